package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/quill/pkg/core"
)

func newSearchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search notes by date, tags or keyword",
	}

	cmd.AddCommand(
		newSearchDateCmd(a),
		newSearchTagsCmd(a),
		newSearchKeywordCmd(a),
	)
	return cmd
}

// parseBound accepts any stored timestamp layout. A date-only upper bound
// covers the whole day.
func parseBound(s string, upper bool) (time.Time, error) {
	ts, err := core.ParseTimestamp(s)
	if err != nil {
		return time.Time{}, err
	}
	if upper && !strings.ContainsAny(s, "T :") {
		return ts.Add(24*time.Hour - time.Nanosecond), nil
	}
	return ts.Time, nil
}

func newSearchDateCmd(a *app) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:     "date",
		Short:   "Notes created between --from and --to (inclusive)",
		Args:    cobra.NoArgs,
		PreRunE: a.open,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseBound(from, false)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			end, err := parseBound(to, true)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}
			if end.Before(start) {
				return fmt.Errorf("--to is before --from")
			}
			return a.printNotes(cmd.OutOrStdout(), a.manager.SearchByDate(start, end))
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Start date (e.g. 2024-01-31 or RFC 3339)")
	cmd.Flags().StringVar(&to, "to", "", "End date (e.g. 2024-02-29 or RFC 3339)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newSearchTagsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "tags [tag...]",
		Short:   "Notes carrying every given tag",
		PreRunE: a.open,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printNotes(cmd.OutOrStdout(), a.manager.SearchByTags(args))
		},
	}
}

func newSearchKeywordCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "keyword [text]",
		Short:   "Notes whose title or body contains text (case-sensitive)",
		Args:    cobra.ExactArgs(1),
		PreRunE: a.open,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printNotes(cmd.OutOrStdout(), a.manager.SearchByKeyword(args[0]))
		},
	}
}
