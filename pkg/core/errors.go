package core

import "errors"

// Common errors.
var (
	// ErrNotFound is the not-found sentinel for lookups by ID.
	ErrNotFound = errors.New("note not found")
	// ErrMalformed wraps any failure to parse the backing store.
	ErrMalformed = errors.New("malformed notes store")
	// ErrNotWatchable is returned by Watch when the repository cannot observe changes.
	ErrNotWatchable = errors.New("repository does not support watching")
)
