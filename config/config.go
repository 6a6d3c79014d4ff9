package config

import (
	"os"
	"strings"

	"github.com/jsphweid/harmonia/pitch"
	"github.com/pkg/errors"
)

const EnvironmentProduction = "production"

// Config holds the process configuration. Everything has a usable default so
// the CLI works with no environment at all.
type Config struct {
	Environment string
	Port        string

	// "sharps" or "flats": how to spell a semitone position when no letter
	// is implied by an interval
	AccidentalMode string

	// Catalog sources. CatalogPath replaces the embedded catalog; a table
	// name adds definitions read from DynamoDB on top.
	CatalogPath      string
	CatalogTable     string
	DynamoDBEndpoint string
	AWSRegion        string

	SentryDSN string
	Debug     bool
}

func Load() *Config {
	return &Config{
		Environment:      getEnv("ENVIRONMENT", "development"),
		Port:             getEnv("PORT", "8080"),
		AccidentalMode:   getEnv("ACCIDENTAL_MODE", "sharps"),
		CatalogPath:      getEnv("CATALOG_PATH", ""),
		CatalogTable:     getEnv("CATALOG_TABLE", ""),
		DynamoDBEndpoint: getEnv("DYNAMODB_ENDPOINT", ""),
		AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		SentryDSN:        getEnv("SENTRY_DSN", ""),
		Debug:            parseBool(getEnv("DEBUG", "false")),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// Mode parses AccidentalMode.
func (c *Config) Mode() (pitch.AccidentalMode, error) {
	mode, err := pitch.ParseAccidentalMode(c.AccidentalMode)
	if err != nil {
		return mode, errors.Wrap(err, "ACCIDENTAL_MODE")
	}
	return mode, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

// UsesDynamoDB reports whether a catalog table is configured.
func (c *Config) UsesDynamoDB() bool {
	return c.CatalogTable != ""
}

// Addr is the listen address for serve.
func (c *Config) Addr() string {
	return ":" + c.Port
}
