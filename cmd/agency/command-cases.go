package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manosdvd/agency/internal/errors"
)

func (c *cli) newCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "new [case name]",
		GroupID: groupCases,
		Short:   "Create a case",
		Long:    `Creates the directory and empty data files of a new case. Files that already exist are kept.`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.store.Create(args[0])
			if err != nil {
				return errors.Wrap(err, "create case")
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created case in %s\n", path)
			return err
		},
	}
}

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		GroupID: groupCases,
		Short:   "List cases",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := c.store.List()
			if err != nil {
				return errors.Wrap(err, "list cases")
			}
			for _, name := range names {
				if _, err = fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
