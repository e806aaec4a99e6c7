package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/manosdvd/agency/internal/casefile"
	"github.com/manosdvd/agency/internal/errors"
)

var ErrValidationFailed = errors.NewSentinel("case has validation errors")

func (c *cli) validateCmd() *cobra.Command {
	var (
		format string
		strict bool
		record bool
	)

	cmd := &cobra.Command{
		Use:     "validate [case name]",
		GroupID: groupValidation,
		Short:   "Validate a case",
		Long: `Checks a case for broken references, logical contradictions and craft problems and prints the findings.

With --strict the command fails when there are errors, which is useful in CI. With --record the findings are
stored in the history database.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			render, err := rendererFor(format)
			if err != nil {
				return err
			}

			name := casefile.SanitizeName(args[0])
			world, caseData, err := c.store.Load(name)
			if err != nil {
				return errors.Wrap(err, "load case")
			}

			report := c.validator.Validate(world, caseData)

			if record {
				reports, closeDB, err := c.openReports(ctx)
				if err != nil {
					return err
				}
				defer closeDB()
				run, err := reports.Record(ctx, name, report)
				if err != nil {
					return errors.Wrap(err, "record validation run")
				}
				c.logger.LogAttrs(ctx, slog.LevelInfo, "recorded validation run", slog.String("run", run.ID))
			}

			if err = render(cmd.OutOrStdout(), name, report); err != nil {
				return errors.Wrap(err, "render report")
			}

			if strict && report.HasErrors() {
				return errors.Wrap(ErrValidationFailed, "strict validation",
					slog.String("case", name), slog.Int("errors", len(report.Errors)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "output format: text, json or yaml")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when the case has errors")
	cmd.Flags().BoolVar(&record, "record", false, "store the findings in the history database")

	return cmd
}
