package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Path          string     `json:"path"`
	Format        string     `json:"format"`
	Strict        bool       `json:"strict"`
	Perm          string     `json:"perm"`
	WatcherActive bool       `json:"watcher_active"`
	LastSave      *time.Time `json:"last_save,omitempty"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	format := "json"
	if _, ok := r.serializer.(*YAMLSerializer); ok {
		format = "yaml"
	}

	return RepositoryState{
		Path:          r.Path,
		Format:        format,
		Strict:        r.config.Strict,
		Perm:          r.config.Perm.String(),
		WatcherActive: r.watcherActive,
		LastSave:      r.lastSave,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "fs-repository"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
