package fs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/quill/pkg/core"
)

// DefaultPerm is the file mode applied to the store after every save.
const DefaultPerm os.FileMode = 0644

// Repository implements core.Repository on a single flat file.
// The format is chosen from the file extension (JSON unless .yaml/.yml).
type Repository struct {
	Path       string
	config     Config
	serializer Serializer

	mu            sync.RWMutex
	lastWritten   []byte
	lastSave      *time.Time
	watcherActive bool
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path        string
	Logger      *slog.Logger
	Perm        os.FileMode           // Defaults to DefaultPerm.
	Strict      bool                  // Reject unknown fields when decoding.
	Serializers map[string]Serializer // Overrides DefaultSerializers when set.
	Debounce    time.Duration         // Watch debounce window. Defaults to 50ms.
}

// NewRepository creates a new file-backed repository.
// Nothing touches the disk until Load or Save.
func NewRepository(config Config) *Repository {
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	if config.Perm == 0 {
		config.Perm = DefaultPerm
	}
	if config.Debounce <= 0 {
		config.Debounce = 50 * time.Millisecond
	}
	serializers := config.Serializers
	if serializers == nil {
		serializers = DefaultSerializers(config.Strict)
	}

	return &Repository{
		Path:       filepath.Clean(config.Path),
		config:     config,
		serializer: serializerFor(config.Path, serializers),
	}
}

// Load reads and parses the whole store.
// A missing file is not an error: it returns (nil, nil).
func (r *Repository) Load(ctx context.Context) ([]core.Note, error) {
	f, err := os.Open(r.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.config.Logger.Debug("store does not exist yet", "path", r.Path)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	defer f.Close()

	return r.decode(f)
}

func (r *Repository) decode(rd io.Reader) ([]core.Note, error) {
	notes, err := r.serializer.Decode(rd)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", core.ErrMalformed, r.Path, err)
	}
	return notes, nil
}

// Save serializes notes and replaces the store with them.
func (r *Repository) Save(ctx context.Context, notes []core.Note) error {
	data, err := r.serializer.Encode(notes)
	if err != nil {
		return fmt.Errorf("failed to serialize notes: %w", err)
	}

	if err := writeFileAtomic(r.Path, data, r.config.Perm); err != nil {
		return err
	}

	now := time.Now()
	r.mu.Lock()
	r.lastWritten = data
	r.lastSave = &now
	r.mu.Unlock()

	r.config.Logger.Debug("store saved", "path", r.Path, "notes", len(notes), "bytes", len(data))
	return nil
}

// isOwnWrite reports whether data is exactly what the last Save produced.
func (r *Repository) isOwnWrite(data []byte) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastWritten != nil && bytes.Equal(r.lastWritten, data)
}

var _ core.Repository = (*Repository)(nil)
var _ core.Watchable = (*Repository)(nil)
