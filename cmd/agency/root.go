package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/manosdvd/agency/internal/casefile"
	"github.com/manosdvd/agency/internal/config"
	"github.com/manosdvd/agency/internal/errors"
	"github.com/manosdvd/agency/internal/repositories"
	"github.com/manosdvd/agency/internal/sqlite"
	"github.com/manosdvd/agency/internal/validation"
)

const (
	groupCases      = "cases"
	groupValidation = "validation"
)

// cli holds the dependencies shared by all commands. They are set up in the root command's PersistentPreRunE
// once the environment has been read.
type cli struct {
	logger    *slog.Logger
	lookupEnv func(string) (string, bool)
	cfg       *config.Config
	store     *casefile.Store
	validator *validation.Validator
}

// newRootCmd builds the agency command tree. lookupEnv has the same signature as os.LookupEnv.
func newRootCmd(logger *slog.Logger, lookupEnv func(string) (string, bool)) *cobra.Command {
	c := &cli{
		logger:    logger,
		lookupEnv: lookupEnv,
		cfg:       nil,
		store:     nil,
		validator: nil,
	}

	root := &cobra.Command{
		Use:           "agency",
		Short:         "Author and validate murder mystery cases",
		Long:          `Command line tool for writing murder mystery cases and checking that they can be solved.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return c.setup()
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupCases, Title: "Case files"},
		&cobra.Group{ID: groupValidation, Title: "Validation"},
	)
	root.AddCommand(
		c.newCmd(),
		c.listCmd(),
		c.validateCmd(),
		c.historyCmd(),
	)

	return root
}

func (c *cli) setup() error {
	cfg, err := config.Load(c.lookupEnv)
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	c.cfg = cfg
	c.store = casefile.NewStore(cfg.CasesDir, c.logger)
	c.validator = validation.New(cfg.Thresholds, c.logger)
	return nil
}

// openReports connects to the history database. The returned function closes the connection.
func (c *cli) openReports(ctx context.Context) (*repositories.ReportRepository, func(), error) {
	dbs, err := sqlite.NewDatabase(ctx, c.cfg.SQLiteURL, c.logger)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open history database")
	}
	closeDB := func() {
		if closeErr := dbs.Close(); closeErr != nil {
			c.logger.LogAttrs(ctx, slog.LevelWarn, "failed to close history database", errors.SlogError(closeErr))
		}
	}
	return repositories.NewReportRepository(dbs, c.logger), closeDB, nil
}
