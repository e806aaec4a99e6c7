package main

import (
	"fmt"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/manosdvd/agency/internal/casefile"
	"github.com/manosdvd/agency/internal/errors"
	"github.com/manosdvd/agency/internal/repositories"
)

func (c *cli) historyCmd() *cobra.Command {
	var (
		limit  int
		format string
	)

	cmd := &cobra.Command{
		Use:     "history [case name] [run id]",
		GroupID: groupValidation,
		Short:   "Show recorded validation runs",
		Long: `Lists the recorded validation runs of a case, newest first. Given a run id, prints the findings of that
run instead.`,
		Args: cobra.RangeArgs(1, 2), //nolint:mnd // case name and optional run id
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			render, err := rendererFor(format)
			if err != nil {
				return err
			}

			reports, closeDB, err := c.openReports(ctx)
			if err != nil {
				return err
			}
			defer closeDB()

			name := casefile.SanitizeName(args[0])
			out := cmd.OutOrStdout()

			if len(args) == 2 { //nolint:mnd // run id given
				run, report, err := reports.Run(ctx, args[1])
				if err != nil {
					return errors.Wrap(err, "read run")
				}
				if run.CaseName != name {
					return errors.Wrap(repositories.ErrRunNotFound, "match run to case",
						slog.String("run", run.ID), slog.String("case", name))
				}
				return render(out, name, report)
			}

			runs, err := reports.Runs(ctx, name, limit)
			if err != nil {
				return errors.Wrap(err, "list runs")
			}
			if len(runs) == 0 {
				_, err = fmt.Fprintf(out, "No recorded runs for %s.\n", name)
				return err
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0) //nolint:mnd // two spaces between columns
			_, _ = fmt.Fprintln(tw, "RUN\tCREATED\tERRORS\tWARNINGS")
			for _, run := range runs {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n",
					run.ID, run.Created.Local().Format(time.DateTime), run.ErrorCount, run.WarningCount)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of runs to list") //nolint:mnd // sensible default
	cmd.Flags().StringVar(&format, "format", formatText, "output format for a single run: text, json or yaml")

	return cmd
}
