package core

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"
)

// Manager owns an ordered collection of notes backed by a Repository.
//
// The whole collection lives in memory. Every mutating operation updates the
// in-memory sequence and then persists the full sequence before returning, so
// after a successful call the store reflects exactly what ReadAll returns.
// A failed write is reported but the in-memory change is kept.
type Manager struct {
	mu          sync.RWMutex
	repo        Repository
	notes       []Note
	logger      *slog.Logger
	clock       func() time.Time
	idPolicy    IDPolicy
	eventBuffer int
	subscribers map[chan Event]struct{}
	lastLoad    *time.Time
}

// NewManager creates a Manager and immediately loads the existing collection.
func NewManager(ctx context.Context, repo Repository, opts ...Option) (*Manager, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	m := &Manager{
		repo:        repo,
		notes:       []Note{},
		logger:      o.logger,
		clock:       o.clock,
		idPolicy:    o.idPolicy,
		eventBuffer: o.eventBuffer,
		subscribers: make(map[chan Event]struct{}),
	}

	if err := m.Load(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

// Load replaces the in-memory collection with the contents of the store.
// A missing store leaves the collection untouched.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.load(ctx)
}

func (m *Manager) load(ctx context.Context) error {
	notes, err := m.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load notes: %w", err)
	}

	now := m.clock()
	m.lastLoad = &now

	if notes == nil {
		m.logger.Debug("store not found, keeping current notes", "count", len(m.notes))
		return nil
	}

	for i := range notes {
		if notes[i].Tags == nil {
			notes[i].Tags = []string{}
		}
	}
	m.notes = notes
	m.logger.Debug("notes loaded", "count", len(notes))
	return nil
}

// Save writes the full in-memory collection to the store.
func (m *Manager) Save(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.save(ctx)
}

func (m *Manager) save(ctx context.Context) error {
	if err := m.repo.Save(ctx, m.notes); err != nil {
		return fmt.Errorf("save notes: %w", err)
	}
	return nil
}

// Create appends a new note and persists the collection.
// Title and body are not validated. A nil tags slice is stored as empty.
func (m *Manager) Create(ctx context.Context, title, body string, tags []string) (*Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tags = slices.Clone(tags)
	if tags == nil {
		tags = []string{}
	}

	n := Note{
		ID:      m.nextID(),
		Title:   title,
		Body:    body,
		Created: NewTimestamp(m.clock()),
		Tags:    tags,
	}
	m.notes = append(m.notes, n)

	if err := m.save(ctx); err != nil {
		return nil, err
	}

	m.logger.Debug("note created", "id", n.ID)
	m.publish(EventCreate, n.ID)
	out := n.clone()
	return &out, nil
}

func (m *Manager) nextID() int {
	if m.idPolicy == IDCount {
		return len(m.notes) + 1
	}

	highest := 0
	for _, n := range m.notes {
		highest = max(highest, n.ID)
	}
	return highest + 1
}

// ReadAll returns a copy of the collection in insertion order.
func (m *Manager) ReadAll() []Note {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Note, len(m.notes))
	for i, n := range m.notes {
		out[i] = n.clone()
	}
	return out
}

// ReadByID returns the first note with the given ID.
// The boolean is false when no note matches.
func (m *Manager) ReadByID(id int) (*Note, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, false
	}
	n := m.notes[i].clone()
	return &n, true
}

func (m *Manager) indexOf(id int) int {
	return slices.IndexFunc(m.notes, func(n Note) bool { return n.ID == id })
}

// Update merges p into the note with the given ID, stamps Updated and
// persists the collection.
//
// A field is replaced only when its patch value is non-empty: an empty title,
// body or tag list keeps the current value. There is no way to clear a field
// through Update.
//
// Returns ErrNotFound when no note has the ID.
func (m *Manager) Update(ctx context.Context, id int, p Patch) (*Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}

	n := &m.notes[i]
	if p.Title != "" {
		n.Title = p.Title
	}
	if p.Body != "" {
		n.Body = p.Body
	}
	if len(p.Tags) > 0 {
		n.Tags = slices.Clone(p.Tags)
	}
	n.Updated = NewTimestamp(m.clock())

	if err := m.save(ctx); err != nil {
		return nil, err
	}

	m.logger.Debug("note updated", "id", id)
	m.publish(EventModify, id)
	out := n.clone()
	return &out, nil
}

// Delete removes the first note with the given ID and persists the collection.
// It returns false, without touching the store, when no note matches.
func (m *Manager) Delete(ctx context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return false, nil
	}
	m.notes = slices.Delete(m.notes, i, i+1)

	if err := m.save(ctx); err != nil {
		return false, err
	}

	m.logger.Debug("note deleted", "id", id)
	m.publish(EventDelete, id)
	return true, nil
}

// Watch streams changes to the collection.
//
// Local mutations are reported as they happen. When the repository is
// Watchable, external changes to the store trigger a Load followed by an
// EventReload. The channel is closed when ctx is done.
func (m *Manager) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := m.repo.(Watchable)
	if !ok {
		return nil, ErrNotWatchable
	}

	changes, err := w.Watch(ctx)
	if err != nil {
		return nil, fmt.Errorf("watch store: %w", err)
	}

	out := make(chan Event, m.eventBuffer)
	m.mu.Lock()
	m.subscribers[out] = struct{}{}
	m.mu.Unlock()

	go func() {
		defer func() {
			m.mu.Lock()
			delete(m.subscribers, out)
			m.mu.Unlock()
			close(out)
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-changes:
				if !ok {
					return
				}
				if err := m.Load(ctx); err != nil {
					m.logger.Error("reload failed", "error", err)
					continue
				}
				select {
				case out <- Event{Type: EventReload, Timestamp: m.clock().Unix()}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

// publish must be called with m.mu held.
func (m *Manager) publish(t EventType, id int) {
	if len(m.subscribers) == 0 {
		return
	}
	e := Event{Type: t, ID: id, Timestamp: m.clock().Unix()}
	for ch := range m.subscribers {
		select {
		case ch <- e:
		default:
			m.logger.Warn("event buffer full, dropping event", "event", e.String())
		}
	}
}
