package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCreateCmd(a *app) *cobra.Command {
	var (
		title string
		body  string
		tags  []string
	)

	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Create a note",
		Long:    `Create appends a new note to the store and writes the file.`,
		Args:    cobra.NoArgs,
		PreRunE: a.open,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.manager.Create(cmd.Context(), title, body, tags)
			if err != nil {
				return fmt.Errorf("failed to create note: %w", err)
			}

			if a.jsonOut {
				return writeJSON(cmd.OutOrStdout(), n)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Note created: %d\n", n.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Note title")
	cmd.Flags().StringVar(&body, "body", "", "Note body")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Tag (repeatable or comma separated)")
	return cmd
}
