package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/quill/pkg/adapters/fs"
	"github.com/aretw0/quill/pkg/core"
)

// Open builds a manager over the store at path and loads it.
//
//	m, err := quill.Open("notes.json", quill.WithIDPolicy(core.IDCount))
func Open(ctx context.Context, path string, opts ...Option) (*core.Manager, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	repo := o.repository
	if repo == nil {
		if path == "" {
			return nil, fmt.Errorf("store path cannot be empty")
		}
		repo = fs.NewRepository(fs.Config{
			Path:   path,
			Logger: o.logger,
			Perm:   o.perm,
			Strict: o.strict,
		})
	}

	m, err := core.NewManager(ctx, repo, o.managerOptions()...)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return m, nil
}
