package main

import (
	"github.com/spf13/cobra"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "info",
		Short:   "Show the internal state of the store",
		Args:    cobra.NoArgs,
		PreRunE: a.open,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(cmd.OutOrStdout(), a.manager.State())
		},
	}
}
