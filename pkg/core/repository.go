package core

import "context"

// Repository defines the contract for the backing store of a note collection.
// The whole collection is read and written at once; there is no per-note access.
type Repository interface {
	// Load returns every stored note in order.
	// A store that does not exist yet yields (nil, nil).
	Load(ctx context.Context) ([]Note, error)

	// Save fully overwrites the store with notes.
	Save(ctx context.Context, notes []Note) error
}

// Watchable defines an interface for repositories that can observe external changes.
type Watchable interface {
	// Watch signals on the returned channel every time the store changes on disk.
	// The channel is closed when ctx is done.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
