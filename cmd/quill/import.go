package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/quill"
)

func newImportCmd(a *app) *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "import [pattern]",
		Short: "Append notes from other stores matching a glob",
		Long: `Import reads every JSON/YAML store matching pattern (e.g. "archive/**/*.json")
and appends their notes with fresh IDs.`,
		Args:    cobra.ExactArgs(1),
		PreRunE: a.open,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := quill.Import(cmd.Context(), a.manager, root, args[0],
				quill.WithLogger(a.logger),
				quill.WithStrict(a.cfg.Strict),
			)
			if err != nil {
				return err
			}

			if a.jsonOut {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d notes from %d files\n", res.Notes, res.Files)
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "Directory the pattern is relative to")
	return cmd
}
