package platform

import (
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/quill/pkg/core"
)

// options holds the internal configuration for a Quill manager.
type options struct {
	repository  core.Repository
	logger      *slog.Logger
	clock       func() time.Time
	idPolicy    core.IDPolicy
	perm        os.FileMode
	strict      bool
	eventBuffer int
}

// Option defines a functional option for configuring Quill.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		idPolicy: core.IDNextMax,
	}
}

// WithLogger sets the logger for the manager and the storage adapter.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock overrides the time source used for Created/Updated stamps.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithIDPolicy selects how new notes get their ID.
// Defaults to core.IDNextMax.
func WithIDPolicy(p core.IDPolicy) Option {
	return func(o *options) {
		o.idPolicy = p
	}
}

// WithPerm sets the file mode applied to the store on every save.
// Zero means default (0644).
func WithPerm(perm os.FileMode) Option {
	return func(o *options) {
		o.perm = perm
	}
}

// WithStrict rejects stores carrying fields other than the note fields.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithEventBuffer sets the buffer size of channels returned by Watch.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. mock, database).
// If provided, the default file adapter is skipped and the path is ignored.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

func (o *options) managerOptions() []core.Option {
	return []core.Option{
		core.WithLogger(o.logger),
		core.WithClock(o.clock),
		core.WithIDPolicy(o.idPolicy),
		core.WithEventBuffer(o.eventBuffer),
	}
}
