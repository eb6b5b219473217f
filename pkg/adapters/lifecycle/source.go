// Package lifecycle exposes note collection events as a lifecycle.Source.
package lifecycle

import (
	"context"
	"iter"
	"slices"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/quill/pkg/core"
)

type noteSource struct {
	events <-chan core.Event
	types  []core.EventType
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits the events produced by
// core.Manager.Watch. When types is non-empty only those event types are
// forwarded.
func NewSource(events <-chan core.Event, types ...core.EventType) lifecycle.Source {
	return &noteSource{
		events: events,
		types:  types,
		out:    make(chan lifecycle.Event),
	}
}

func (s *noteSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start relays events until ctx is done or the manager closes its channel.
// Events() is closed when relaying stops.
func (s *noteSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, s.relay)
	return nil
}

func (s *noteSource) relay(ctx context.Context) error {
	defer close(s.out)

	for e := range s.pending(ctx) {
		if !s.accepts(e.Type) {
			continue
		}
		if !s.emit(ctx, e) {
			return nil
		}
	}
	return nil
}

// pending yields manager events until ctx is done or the channel closes.
func (s *noteSource) pending(ctx context.Context) iter.Seq[core.Event] {
	return func(yield func(core.Event) bool) {
		for {
			var (
				e  core.Event
				ok bool
			)
			select {
			case <-ctx.Done():
				return
			case e, ok = <-s.events:
			}
			if !ok || !yield(e) {
				return
			}
		}
	}
}

func (s *noteSource) accepts(t core.EventType) bool {
	return len(s.types) == 0 || slices.Contains(s.types, t)
}

func (s *noteSource) emit(ctx context.Context, e core.Event) bool {
	select {
	case s.out <- e:
		return true
	case <-ctx.Done():
		return false
	}
}
