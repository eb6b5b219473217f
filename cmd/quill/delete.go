package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/quill/pkg/core"
)

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete [id]",
		Short:   "Delete a note from the store",
		Args:    cobra.ExactArgs(1),
		PreRunE: a.open,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ok, err := a.manager.Delete(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to delete note: %w", err)
			}
			if !ok {
				return fmt.Errorf("%w: %d", core.ErrNotFound, id)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Note deleted: %d\n", id)
			return nil
		},
	}
}
