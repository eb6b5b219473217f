package main

import (
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List all notes in insertion order",
		Args:    cobra.NoArgs,
		PreRunE: a.open,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printNotes(cmd.OutOrStdout(), a.manager.ReadAll())
		},
	}
}
