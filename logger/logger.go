package logger

import (
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/getsentry/sentry-go"
)

// Fields represents structured log fields
type Fields map[string]interface{}

type requestIDKey struct{}

// RequestIDKey is the context key serve stores the request id under.
var RequestIDKey = requestIDKey{}

var debug atomic.Bool

// SetDebug turns Debug output on or off.
func SetDebug(on bool) {
	debug.Store(on)
}

// WithRequest extracts request details for logging
func WithRequest(r *http.Request) Fields {
	fields := Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	}
	if id, ok := r.Context().Value(RequestIDKey).(string); ok {
		fields["request_id"] = id
	}
	return fields
}

// Info logs an informational message with structured fields
func Info(msg string, fields Fields) {
	log.Printf("[INFO] %s %v", msg, formatFields(fields))
	breadcrumb("info", msg, fields, sentry.LevelInfo)
}

// Warn logs a warning message with structured fields
func Warn(msg string, fields Fields) {
	log.Printf("[WARN] %s %v", msg, formatFields(fields))
	breadcrumb("warning", msg, fields, sentry.LevelWarning)
}

// Debug logs only when debug output is on.
func Debug(msg string, fields Fields) {
	if !debug.Load() {
		return
	}
	log.Printf("[DEBUG] %s %v", msg, formatFields(fields))
	breadcrumb("debug", msg, fields, sentry.LevelDebug)
}

// Error logs an error message with structured fields and sends to Sentry
func Error(msg string, err error, fields Fields) {
	log.Printf("[ERROR] %s: %v %v", msg, err, formatFields(fields))

	if hub := sentry.CurrentHub(); hub.Client() != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			for key, value := range fields {
				scope.SetContext(key, map[string]interface{}{
					"value": value,
				})
			}
			if requestID, ok := fields["request_id"].(string); ok {
				scope.SetTag("request_id", requestID)
			}
			hub.CaptureException(err)
		})
	}
}

// LogRequest logs a finished HTTP request
func LogRequest(r *http.Request, duration time.Duration, statusCode int, fields Fields) {
	merged := WithRequest(r)
	for k, v := range fields {
		merged[k] = v
	}
	merged["duration_ms"] = duration.Milliseconds()
	merged["status_code"] = statusCode

	Info("request completed", merged)
}

func breadcrumb(kind, msg string, fields Fields, level sentry.Level) {
	if hub := sentry.CurrentHub(); hub.Client() != nil {
		sentry.AddBreadcrumb(&sentry.Breadcrumb{
			Type:     kind,
			Category: "log",
			Message:  msg,
			Data:     convertFieldsToMap(fields),
			Level:    level,
		})
	}
}

// formatFields renders fields as {k=v, ...} with keys sorted.
func formatFields(fields Fields) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("{")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(formatValue(fields[k]))
	}
	b.WriteString("}")
	return b.String()
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return fmt.Sprintf("%d", val)
	case int64:
		return fmt.Sprintf("%d", val)
	case float64:
		return fmt.Sprintf("%.2f", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func convertFieldsToMap(fields Fields) map[string]interface{} {
	result := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		result[k] = v
	}
	return result
}
