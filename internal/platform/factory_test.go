package platform_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quill/internal/platform"
	"github.com/aretw0/quill/pkg/core"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "notes.json")
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	m, err := platform.Open(ctx, path, platform.WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	assert.Empty(t, m.ReadAll())

	n, err := m.Create(ctx, "A", "B", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, n.ID)
	assert.True(t, n.Created.Equal(now))

	_, err = os.Stat(path)
	assert.NoError(t, err, "store written on first create")
}

func TestOpen_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0644))

	_, err := platform.Open(context.Background(), path)
	assert.ErrorIs(t, err, core.ErrMalformed)
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := platform.Open(context.Background(), "")
	assert.Error(t, err)
}

type memRepo struct{ notes []core.Note }

func (r *memRepo) Load(ctx context.Context) ([]core.Note, error) { return r.notes, nil }

func (r *memRepo) Save(ctx context.Context, notes []core.Note) error {
	r.notes = append([]core.Note(nil), notes...)
	return nil
}

func TestOpen_WithRepository(t *testing.T) {
	repo := &memRepo{}
	m, err := platform.Open(context.Background(), "", platform.WithRepository(repo), platform.WithIDPolicy(core.IDCount))
	require.NoError(t, err)

	_, err = m.Create(context.Background(), "x", "y", nil)
	require.NoError(t, err)
	assert.Len(t, repo.notes, 1)

	state := m.State().(core.ManagerState)
	assert.Equal(t, core.IDCount, state.IDPolicy)
}
