package quill

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/quill/internal/platform"
	"github.com/aretw0/quill/pkg/core"
)

// --- Types ---

// Note is a public alias for the core note entity.
type Note = core.Note

// Manager is a public alias for the core note manager.
type Manager = core.Manager

// Patch is a public alias for the update payload.
type Patch = core.Patch

// ImportResult is a public alias for the Import summary.
type ImportResult = platform.ImportResult

// --- Configuration ---

// Option defines a functional option for configuring Quill.
type Option = platform.Option

// WithLogger sets the logger for the manager and the storage adapter.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithClock overrides the time source used for timestamps (useful for testing).
func WithClock(clock func() time.Time) Option {
	return platform.WithClock(clock)
}

// WithIDPolicy selects how new notes get their ID.
func WithIDPolicy(p core.IDPolicy) Option {
	return platform.WithIDPolicy(p)
}

// WithPerm sets the file mode of the store.
func WithPerm(perm os.FileMode) Option {
	return platform.WithPerm(perm)
}

// WithStrict rejects stores with unknown fields.
func WithStrict(strict bool) Option {
	return platform.WithStrict(strict)
}

// WithEventBuffer sets the buffer size of Watch channels.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// --- Factory ---

// Open creates a Manager over the store at path and loads its notes.
// A missing file is an empty collection; it is created on the first write.
func Open(ctx context.Context, path string, opts ...Option) (*Manager, error) {
	return platform.Open(ctx, path, opts...)
}

// --- Operations ---

// Import appends the notes of every store under root matching pattern to m.
func Import(ctx context.Context, m *Manager, root, pattern string, opts ...Option) (ImportResult, error) {
	return platform.Import(ctx, m, root, pattern, opts...)
}
