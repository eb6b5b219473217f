package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"
)

// Watch signals whenever the store file is changed by someone else.
//
// The parent directory is watched rather than the file itself because saves
// replace the file through a rename. Bursts of events are debounced, and
// changes whose content matches our own last Save are ignored.
func (r *Repository) Watch(ctx context.Context) (<-chan struct{}, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	dir := filepath.Dir(r.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	out := make(chan struct{}, 1)
	r.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(out)
		defer r.setWatcherActive(false)
		defer watcher.Close()
		return r.watchLoop(ctx, watcher, out)
	}, lifecycle.WithErrorHandler(func(err error) {
		r.config.Logger.Error("watcher stopped", "error", err)
	}))

	return out, nil
}

func (r *Repository) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, out chan<- struct{}) error {
	timer := time.NewTimer(r.config.Debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			if filepath.Clean(event.Name) != r.Path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			r.config.Logger.Debug("store event", "op", event.Op.String())
			timer.Reset(r.config.Debounce)

		case <-timer.C:
			if r.changedExternally() {
				// Coalesce: one pending signal is enough.
				select {
				case out <- struct{}{}:
				default:
				}
			}

		case wErr, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			r.config.Logger.Error("fsnotify error", "error", wErr)
		}
	}
}

// changedExternally compares the file on disk with our last write.
// A missing file counts as a change.
func (r *Repository) changedExternally() bool {
	data, err := os.ReadFile(r.Path)
	if err != nil {
		return true
	}
	return !r.isOwnWrite(data)
}

func (r *Repository) setWatcherActive(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watcherActive = active
}
