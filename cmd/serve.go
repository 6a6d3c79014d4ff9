package cmd

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/harmonia/catalog"
	"github.com/jsphweid/harmonia/instrument"
	"github.com/jsphweid/harmonia/interval"
	"github.com/jsphweid/harmonia/logger"
	"github.com/jsphweid/harmonia/model"
	"github.com/jsphweid/harmonia/pitch"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

const requestIDHeader = "X-Request-ID"

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the JSON API",
	Long: `Serves the catalog over HTTP:

  GET /catalog
  GET /scales/{id}?root=C4&octaves=1&mode=1
  GET /chords/{id}?root=C4&inversion=0
  GET /interval?from=C&to=E
  GET /fretboard/{tuning}/{chord}?root=C
  GET /identify?notes=E3,G3,C4`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

// NewRouter wires every endpoint with request ids, logging and CORS.
func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestID, logRequests)
	router.HandleFunc("/catalog", HandleCatalog).Methods("GET")
	router.HandleFunc("/scales/{id}", HandleScale).Methods("GET")
	router.HandleFunc("/chords/{id}", HandleChord).Methods("GET")
	router.HandleFunc("/interval", HandleInterval).Methods("GET")
	router.HandleFunc("/fretboard/{tuning}/{chord}", HandleFretboard).Methods("GET")
	router.HandleFunc("/identify", HandleIdentify).Methods("GET")

	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet},
	}).Handler(router)
}

func serve() error {
	addr := cfg.Addr()
	logger.Info("listening", logger.Fields{"addr": addr, "mode": mode.String()})
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		sentry.CaptureException(err)
		return err
	}
	return nil
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)
		ctx := context.WithValue(r.Context(), logger.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.LogRequest(r, time.Since(start), rec.status, nil)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("could not encode response", err, nil)
	}
}

// writeError maps lookup misses to 404, unplayable chords to 422 and
// everything else to 400.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, instrument.ErrNoFingering):
		status = http.StatusUnprocessableEntity
	}
	fields := logger.WithRequest(r)
	fields["status_code"] = status
	logger.Warn(err.Error(), fields)
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func intQuery(r *http.Request, key string, def int) (int, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Errorf("%s must be an integer, got %q", key, s)
	}
	return n, nil
}

func HandleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.CatalogResponse{
		Scales:  cat.ScaleIDs(),
		Chords:  cat.ChordIDs(),
		Tunings: cat.TuningIDs(),
	})
}

func HandleScale(w http.ResponseWriter, r *http.Request) {
	octaves, err := intQuery(r, "octaves", 1)
	if err != nil {
		writeError(w, r, err)
		return
	}
	degree, err := intQuery(r, "mode", 1)
	if err != nil {
		writeError(w, r, err)
		return
	}
	res, err := buildScale(mux.Vars(r)["id"], r.URL.Query().Get("root"), octaves, degree)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleChord(w http.ResponseWriter, r *http.Request) {
	inversion, err := intQuery(r, "inversion", 0)
	if err != nil {
		writeError(w, r, err)
		return
	}
	res, err := buildChord(mux.Vars(r)["id"], r.URL.Query().Get("root"), inversion)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleInterval(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from == "" || to == "" {
		writeError(w, r, errors.Wrap(interval.ErrFormat, "from and to are required"))
		return
	}
	res, err := intervalBetween(from, to)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleFretboard(w http.ResponseWriter, r *http.Request) {
	span, err := intQuery(r, "span", defaultSpan)
	if err != nil {
		writeError(w, r, err)
		return
	}
	root := r.URL.Query().Get("root")
	if root == "" {
		root = pitch.C.String()
	}
	vars := mux.Vars(r)
	res, err := buildFingering(vars["tuning"], vars["chord"], root, span, defaultMaxFret)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleIdentify(w http.ResponseWriter, r *http.Request) {
	res, err := identify(r.URL.Query().Get("notes"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
