package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// Discover returns the store files under root matching pattern
// (doublestar syntax, e.g. "archive/**/*.json"), sorted.
// Only extensions with a default serializer are returned.
func Discover(root, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}

	matches, err := doublestar.Glob(os.DirFS(root), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to glob %q: %w", pattern, err)
	}

	known := DefaultSerializers(false)
	var paths []string
	for _, m := range matches {
		if _, ok := known[filepath.Ext(m)]; !ok {
			continue
		}
		paths = append(paths, filepath.Join(root, filepath.FromSlash(m)))
	}
	slices.Sort(paths)
	return paths, nil
}
