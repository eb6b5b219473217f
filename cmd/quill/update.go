package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/quill/pkg/core"
)

func newUpdateCmd(a *app) *cobra.Command {
	var patch core.Patch

	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a note",
		Long: `Update replaces the title, body or tags of a note and stamps its update time.
Flags left empty keep the current value; a field cannot be cleared this way.`,
		Args:    cobra.ExactArgs(1),
		PreRunE: a.open,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			n, err := a.manager.Update(cmd.Context(), id, patch)
			if errors.Is(err, core.ErrNotFound) {
				return fmt.Errorf("%w: %d", err, id)
			}
			if err != nil {
				return fmt.Errorf("failed to update note: %w", err)
			}

			if a.jsonOut {
				return writeJSON(cmd.OutOrStdout(), n)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Note updated: %d\n", n.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&patch.Title, "title", "", "New title")
	cmd.Flags().StringVar(&patch.Body, "body", "", "New body")
	cmd.Flags().StringSliceVarP(&patch.Tags, "tag", "t", nil, "New tags (replace the current set)")
	return cmd
}
