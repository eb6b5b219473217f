package core

import (
	"log/slog"
	"time"
)

// IDPolicy selects how Create assigns identifiers.
type IDPolicy string

const (
	// IDNextMax assigns one more than the highest ID in the collection.
	// It never collides with a remaining note.
	IDNextMax IDPolicy = "next"
	// IDCount assigns len(notes)+1. After a deletion the new ID can collide
	// with an existing note; kept for stores that rely on the old numbering.
	IDCount IDPolicy = "count"
)

// ParseIDPolicy maps a configuration string to an IDPolicy.
func ParseIDPolicy(s string) (IDPolicy, bool) {
	switch IDPolicy(s) {
	case IDNextMax, "":
		return IDNextMax, true
	case IDCount:
		return IDCount, true
	}
	return "", false
}

// options holds the configuration for a Manager.
type options struct {
	logger      *slog.Logger
	clock       func() time.Time
	idPolicy    IDPolicy
	eventBuffer int
}

// Option defines a functional option for configuring a Manager.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		logger:      slog.New(slog.DiscardHandler),
		clock:       time.Now,
		idPolicy:    IDNextMax,
		eventBuffer: 100,
	}
}

// WithLogger sets the logger for the manager.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithClock overrides the time source used for Created/Updated stamps.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithIDPolicy selects the ID assignment strategy. Defaults to IDNextMax.
func WithIDPolicy(p IDPolicy) Option {
	return func(o *options) {
		o.idPolicy = p
	}
}

// WithEventBuffer sets the buffer size of channels returned by Watch.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.eventBuffer = size
		}
	}
}
