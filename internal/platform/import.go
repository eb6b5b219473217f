package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/quill/pkg/adapters/fs"
	"github.com/aretw0/quill/pkg/core"
)

// ImportResult summarizes an Import run.
type ImportResult struct {
	Files int
	Notes int
}

// Import appends the notes of every store under root matching pattern to m.
// Imported notes get fresh IDs from m; title, body and tags are kept.
// Created is re-stamped by m, so original dates are not carried over.
func Import(ctx context.Context, m *core.Manager, root, pattern string, opts ...Option) (ImportResult, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	paths, err := fs.Discover(root, pattern)
	if err != nil {
		return ImportResult{}, err
	}

	var res ImportResult
	for _, path := range paths {
		src := fs.NewRepository(fs.Config{Path: path, Logger: o.logger, Strict: o.strict})
		notes, err := src.Load(ctx)
		if err != nil {
			return res, fmt.Errorf("import %s: %w", path, err)
		}
		for _, n := range notes {
			if _, err := m.Create(ctx, n.Title, n.Body, n.Tags); err != nil {
				return res, fmt.Errorf("import %s: %w", path, err)
			}
			res.Notes++
		}
		res.Files++
	}
	return res, nil
}
