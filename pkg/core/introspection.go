package core

import (
	"time"

	"github.com/aretw0/introspection"
)

// ManagerState exposes internal state for observability.
type ManagerState struct {
	Notes          int        `json:"notes"`
	NextID         int        `json:"next_id"`
	IDPolicy       IDPolicy   `json:"id_policy"`
	Subscribers    int        `json:"subscribers"`
	EventBuffer    int        `json:"event_buffer_size"`
	RepositoryType string     `json:"repository_type"`
	LastLoad       *time.Time `json:"last_load,omitempty"`
}

// State implements introspection.Introspectable.
func (m *Manager) State() any {
	m.mu.RLock()
	defer m.mu.RUnlock()

	repoType := "unknown"
	if m.repo != nil {
		repoType = "repository"
		if comp, ok := m.repo.(introspection.Component); ok {
			repoType = comp.ComponentType()
		}
	}

	return ManagerState{
		Notes:          len(m.notes),
		NextID:         m.nextID(),
		IDPolicy:       m.idPolicy,
		Subscribers:    len(m.subscribers),
		EventBuffer:    m.eventBuffer,
		RepositoryType: repoType,
		LastLoad:       m.lastLoad,
	}
}

// ComponentType implements introspection.Component.
func (m *Manager) ComponentType() string {
	return "manager"
}

var _ introspection.Introspectable = (*Manager)(nil)
var _ introspection.Component = (*Manager)(nil)
