package cmd

import (
	"context"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jsphweid/harmonia/catalog"
	"github.com/jsphweid/harmonia/config"
	"github.com/jsphweid/harmonia/db"
	"github.com/jsphweid/harmonia/logger"
	"github.com/jsphweid/harmonia/pitch"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const sentryFlushTimeout = 2 * time.Second

// releaseVersion is set via ldflags during build
var releaseVersion = "dev"

var (
	cfg     *config.Config
	cat     *catalog.Catalog
	mode    pitch.AccidentalMode
	useFlat bool
)

var rootCmd = &cobra.Command{
	Use:   "harmonia",
	Short: "Music theory toolkit",
	Long: `Spell pitches, intervals, scales and chords, and draw them on a
fretboard. Run "harmonia serve" for the JSON API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setup(cmd.Context()); err != nil {
			return err
		}
		if useFlat {
			mode = pitch.FavorFlats
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&useFlat, "flats", false, "spell black keys with flats")
}

func Execute() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	defer sentry.Flush(sentryFlushTimeout)
	cobra.CheckErr(rootCmd.Execute())
}

// setup loads configuration and the catalog. It is idempotent so tests can
// call handlers without going through cobra.
func setup(ctx context.Context) error {
	if cat != nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cfg = config.Load()
	logger.SetDebug(cfg.Debug)
	initSentry(cfg)

	var err error
	mode, err = cfg.Mode()
	if err != nil {
		return err
	}

	opts := catalog.Options{Path: cfg.CatalogPath}
	if cfg.UsesDynamoDB() {
		source, err := db.Connect(cfg.DynamoDBEndpoint, cfg.AWSRegion, cfg.CatalogTable)
		if err != nil {
			return err
		}
		opts.Remote = source
	}
	cat, err = catalog.Load(ctx, opts)
	return err
}

func initSentry(cfg *config.Config) {
	if cfg.SentryDSN == "" {
		return
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.Environment,
		Release:     "harmonia@" + releaseVersion,
		Debug:       !cfg.IsProduction() && cfg.Debug,
	})
	if err != nil {
		log.Printf("Failed to initialize Sentry: %v", err)
		return
	}
	logger.Debug("sentry initialized", logger.Fields{"environment": cfg.Environment})
}

// LoadServeFiles prepares package state for handler tests.
func LoadServeFiles() error {
	return setup(context.Background())
}
