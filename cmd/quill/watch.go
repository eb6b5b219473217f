package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/quill/pkg/adapters/lifecycle"
	"github.com/aretw0/quill/pkg/core"
)

func newWatchCmd(a *app) *cobra.Command {
	var only []string

	cmd := &cobra.Command{
		Use:     "watch",
		Short:   "Print a line every time the store changes on disk",
		Args:    cobra.NoArgs,
		PreRunE: a.open,
		RunE: func(cmd *cobra.Command, args []string) error {
			types, err := parseEventTypes(only)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.watch(ctx, cmd, types)
		},
	}
	cmd.Flags().StringSliceVar(&only, "only", nil, "event types to print (CREATE, MODIFY, DELETE, RELOAD)")
	return cmd
}

func parseEventTypes(names []string) ([]core.EventType, error) {
	types := make([]core.EventType, 0, len(names))
	for _, name := range names {
		t := core.EventType(strings.ToUpper(strings.TrimSpace(name)))
		switch t {
		case core.EventCreate, core.EventModify, core.EventDelete, core.EventReload:
			types = append(types, t)
		default:
			return nil, fmt.Errorf("unknown event type %q", name)
		}
	}
	return types, nil
}

func (a *app) watch(ctx context.Context, cmd *cobra.Command, types []core.EventType) error {
	events, err := a.manager.Watch(ctx)
	if err != nil {
		return err
	}

	src := lifecycle.NewSource(events, types...)
	if err := src.Start(ctx); err != nil {
		return err
	}

	a.logger.Info("watching", "file", a.cfg.File)
	for e := range src.Events() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%d notes)\n", e, len(a.manager.ReadAll()))
	}
	return nil
}
