package core_test

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quill/pkg/core"
)

// MockRepository implements core.Repository in memory.
// It deliberately does NOT implement core.Watchable.
type MockRepository struct {
	stored  []core.Note
	exists  bool
	saves   int
	loadErr error
	saveErr error
}

func (m *MockRepository) Load(ctx context.Context) ([]core.Note, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if !m.exists {
		return nil, nil
	}
	return slices.Clone(m.stored), nil
}

func (m *MockRepository) Save(ctx context.Context, notes []core.Note) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.exists = true
	m.stored = slices.Clone(notes)
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newManager(t *testing.T, repo *MockRepository, opts ...core.Option) *core.Manager {
	t.Helper()
	opts = append([]core.Option{core.WithClock(fixedClock(epoch))}, opts...)
	m, err := core.NewManager(context.Background(), repo, opts...)
	require.NoError(t, err)
	return m
}

func TestManager_NewEmptyStore(t *testing.T) {
	m := newManager(t, &MockRepository{})
	assert.Empty(t, m.ReadAll())
}

func TestManager_NewLoadError(t *testing.T) {
	repo := &MockRepository{loadErr: core.ErrMalformed}
	_, err := core.NewManager(context.Background(), repo)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrMalformed)
}

func TestManager_Create(t *testing.T) {
	repo := &MockRepository{}
	m := newManager(t, repo)
	ctx := context.Background()

	first, err := m.Create(ctx, "A", "B", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, []string{}, first.Tags)
	require.NotNil(t, first.Created)
	assert.True(t, first.Created.Equal(epoch))
	assert.Nil(t, first.Updated)

	second, err := m.Create(ctx, "C", "D", []string{"work"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)

	// Persisted immediately.
	assert.Equal(t, 2, repo.saves)
	assert.Equal(t, m.ReadAll(), repo.stored)
}

func TestManager_CreateSaveFailureKeepsMemory(t *testing.T) {
	repo := &MockRepository{}
	m := newManager(t, repo)
	repo.saveErr = errors.New("disk full")

	n, err := m.Create(context.Background(), "A", "B", nil)
	require.Error(t, err)
	assert.Nil(t, n)
	assert.Len(t, m.ReadAll(), 1)
}

func TestManager_UpdateSaveFailureKeepsMemory(t *testing.T) {
	repo := &MockRepository{}
	m := newManager(t, repo)
	ctx := context.Background()
	_, err := m.Create(ctx, "old", "", nil)
	require.NoError(t, err)
	repo.saveErr = errors.New("disk full")

	n, err := m.Update(ctx, 1, core.Patch{Title: "new"})
	require.Error(t, err)
	assert.Nil(t, n)

	got, ok := m.ReadByID(1)
	require.True(t, ok)
	assert.Equal(t, "new", got.Title)
	assert.NotNil(t, got.Updated)
	assert.Equal(t, "old", repo.stored[0].Title)
}

func TestManager_DeleteSaveFailureKeepsMemory(t *testing.T) {
	repo := &MockRepository{}
	m := newManager(t, repo)
	ctx := context.Background()
	for _, title := range []string{"a", "b"} {
		_, err := m.Create(ctx, title, "", nil)
		require.NoError(t, err)
	}
	repo.saveErr = errors.New("disk full")

	ok, err := m.Delete(ctx, 1)
	require.Error(t, err)
	assert.False(t, ok)

	_, found := m.ReadByID(1)
	assert.False(t, found)
	assert.Len(t, m.ReadAll(), 1)
	assert.Len(t, repo.stored, 2)
}

func TestManager_ReadByID(t *testing.T) {
	m := newManager(t, &MockRepository{})
	ctx := context.Background()
	_, _ = m.Create(ctx, "one", "", nil)
	_, _ = m.Create(ctx, "two", "", nil)

	n, ok := m.ReadByID(2)
	require.True(t, ok)
	assert.Equal(t, "two", n.Title)

	n, ok = m.ReadByID(42)
	assert.False(t, ok)
	assert.Nil(t, n)
}

func TestManager_Update(t *testing.T) {
	later := epoch.Add(time.Hour)
	clock := epoch
	repo := &MockRepository{}
	m := newManager(t, repo, core.WithClock(func() time.Time { return clock }))
	ctx := context.Background()

	_, err := m.Create(ctx, "Old", "body", []string{"a", "b"})
	require.NoError(t, err)

	clock = later
	n, err := m.Update(ctx, 1, core.Patch{Title: "New"})
	require.NoError(t, err)
	assert.Equal(t, "New", n.Title)
	assert.Equal(t, "body", n.Body)
	assert.Equal(t, []string{"a", "b"}, n.Tags)
	require.NotNil(t, n.Updated)
	assert.True(t, n.Updated.Equal(later))
	assert.True(t, n.Created.Equal(epoch))

	assert.Equal(t, "New", repo.stored[0].Title)
}

func TestManager_UpdateKeepsOnEmptyValues(t *testing.T) {
	m := newManager(t, &MockRepository{})
	ctx := context.Background()
	_, _ = m.Create(ctx, "title", "body", []string{"keep"})

	n, err := m.Update(ctx, 1, core.Patch{Title: "", Body: "", Tags: []string{}})
	require.NoError(t, err)
	assert.Equal(t, "title", n.Title)
	assert.Equal(t, "body", n.Body)
	assert.Equal(t, []string{"keep"}, n.Tags)
	assert.NotNil(t, n.Updated)
}

func TestManager_UpdateNotFound(t *testing.T) {
	repo := &MockRepository{}
	m := newManager(t, repo)

	n, err := m.Update(context.Background(), 7, core.Patch{Title: "x"})
	assert.Nil(t, n)
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.Zero(t, repo.saves)
}

func TestManager_Delete(t *testing.T) {
	repo := &MockRepository{}
	m := newManager(t, repo)
	ctx := context.Background()
	for _, title := range []string{"a", "b", "c"} {
		_, err := m.Create(ctx, title, "", nil)
		require.NoError(t, err)
	}

	ok, err := m.Delete(ctx, 99)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, m.ReadAll(), 3)
	assert.Equal(t, 3, repo.saves)

	ok, err = m.Delete(ctx, 2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, m.ReadAll(), 2)
	_, found := m.ReadByID(2)
	assert.False(t, found)
	assert.Len(t, repo.stored, 2)
}

func TestManager_IDAssignmentAfterDelete(t *testing.T) {
	ctx := context.Background()
	setup := func(t *testing.T, policy core.IDPolicy) *core.Manager {
		m := newManager(t, &MockRepository{}, core.WithIDPolicy(policy))
		for i := 0; i < 3; i++ {
			_, err := m.Create(ctx, "n", "", nil)
			require.NoError(t, err)
		}
		ok, err := m.Delete(ctx, 2)
		require.NoError(t, err)
		require.True(t, ok)
		return m
	}

	t.Run("NextMax Avoids Collision", func(t *testing.T) {
		m := setup(t, core.IDNextMax)
		n, err := m.Create(ctx, "new", "", nil)
		require.NoError(t, err)
		assert.Equal(t, 4, n.ID)
	})

	t.Run("Count Collides", func(t *testing.T) {
		m := setup(t, core.IDCount)
		n, err := m.Create(ctx, "new", "", nil)
		require.NoError(t, err)
		assert.Equal(t, 3, n.ID)

		ids := 0
		for _, note := range m.ReadAll() {
			if note.ID == 3 {
				ids++
			}
		}
		assert.Equal(t, 2, ids, "legacy policy reuses an existing id")
	})
}

func TestManager_LoadKeepsMemoryWhenStoreMissing(t *testing.T) {
	repo := &MockRepository{}
	m := newManager(t, repo)
	ctx := context.Background()
	_, _ = m.Create(ctx, "a", "", nil)

	repo.exists = false
	require.NoError(t, m.Load(ctx))
	assert.Len(t, m.ReadAll(), 1)
}

func TestManager_LoadNormalizesTags(t *testing.T) {
	repo := &MockRepository{exists: true, stored: []core.Note{{ID: 1, Title: "t"}}}
	m := newManager(t, repo)
	n, ok := m.ReadByID(1)
	require.True(t, ok)
	assert.Equal(t, []string{}, n.Tags)
}

func TestManager_WatchUnsupported(t *testing.T) {
	m := newManager(t, &MockRepository{})
	_, err := m.Watch(context.Background())
	assert.ErrorIs(t, err, core.ErrNotWatchable)
}

func TestManager_State(t *testing.T) {
	m := newManager(t, &MockRepository{}, core.WithEventBuffer(5))
	_, _ = m.Create(context.Background(), "a", "", nil)

	state, ok := m.State().(core.ManagerState)
	require.True(t, ok)
	assert.Equal(t, 1, state.Notes)
	assert.Equal(t, 2, state.NextID)
	assert.Equal(t, core.IDNextMax, state.IDPolicy)
	assert.Equal(t, 5, state.EventBuffer)
	assert.Equal(t, "repository", state.RepositoryType)
	assert.Equal(t, "manager", m.ComponentType())
}
