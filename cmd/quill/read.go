package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aretw0/quill/pkg/core"
)

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid note id %q", s)
	}
	return id, nil
}

func newReadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "read [id]",
		Short:   "Read a note",
		Long:    `Read a note by its ID. Outputs a readable summary by default, or a JSON object with --json.`,
		Args:    cobra.ExactArgs(1),
		PreRunE: a.open,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			n, ok := a.manager.ReadByID(id)
			if !ok {
				return fmt.Errorf("%w: %d", core.ErrNotFound, id)
			}
			return a.printNote(cmd.OutOrStdout(), n)
		},
	}
}
