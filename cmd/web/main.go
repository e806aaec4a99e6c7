package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/manosdvd/agency/internal/casefile"
	"github.com/manosdvd/agency/internal/config"
	"github.com/manosdvd/agency/internal/errors"
	"github.com/manosdvd/agency/internal/logging"
	"github.com/manosdvd/agency/internal/pprofserver"
	"github.com/manosdvd/agency/internal/repositories"
	"github.com/manosdvd/agency/internal/sqlite"
	"github.com/manosdvd/agency/internal/validation"
)

type application struct {
	logger    *slog.Logger
	store     *casefile.Store
	validator *validation.Validator
	reports   *repositories.ReportRepository
}

// databaseOptimizeInterval is how often PRAGMA optimize runs on the history database.
const databaseOptimizeInterval = 6 * time.Hour

// run starts the web server and blocks until ctx is cancelled or the process receives an interrupt.
//
// lookupEnv has the same signature as [os.LookupEnv].
func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	cfg, err := config.Load(lookupEnv)
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cfg.PprofAddr != "" {
		// Profiles are served on a listener of their own so that they never share the public address.
		if _, err = pprofserver.Launch(ctx, cfg.PprofAddr, logger); err != nil {
			return errors.Wrap(err, "launch pprof server")
		}
	}

	var dbs *sqlite.Database
	if dbs, err = sqlite.NewDatabase(ctx, cfg.SQLiteURL, logger); err != nil {
		return errors.Wrap(err, "open database")
	}
	defer func() {
		if closeErr := dbs.Close(); closeErr != nil {
			logger.LogAttrs(ctx, slog.LevelError, "failed to close database", errors.SlogError(closeErr))
		}
	}()
	go dbs.StartDatabaseOptimizer(ctx, databaseOptimizeInterval)

	app := application{
		logger:    logger,
		store:     casefile.NewStore(cfg.CasesDir, logger),
		validator: validation.New(cfg.Thresholds, logger),
		reports:   repositories.NewReportRepository(dbs, logger),
	}

	return app.configureAndStartServer(ctx, cfg.Addr)
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   true,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.LogAttrs(ctx, slog.LevelError, "failed to load .env", errors.SlogError(err))
		os.Exit(1)
	}

	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
