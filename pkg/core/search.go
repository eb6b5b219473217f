package core

import (
	"strings"
	"time"
)

// SearchByDate returns the notes whose Created timestamp lies in [start, end].
// Notes without a Created timestamp never match.
func (m *Manager) SearchByDate(start, end time.Time) []Note {
	skipped := 0
	matches := m.filter(func(n Note) bool {
		if n.Created == nil {
			skipped++
			return false
		}
		return n.Created.Within(start, end)
	})
	if skipped > 0 {
		m.logger.Debug("notes without created timestamp skipped", "count", skipped)
	}
	return matches
}

// SearchByTags returns the notes carrying every tag in tags.
// An empty tags list matches every note.
func (m *Manager) SearchByTags(tags []string) []Note {
	return m.filter(func(n Note) bool {
		for _, t := range tags {
			if !n.HasTag(t) {
				return false
			}
		}
		return true
	})
}

// SearchByKeyword returns the notes whose title or body contains keyword.
// Matching is case-sensitive.
func (m *Manager) SearchByKeyword(keyword string) []Note {
	return m.filter(func(n Note) bool {
		return strings.Contains(n.Title, keyword) || strings.Contains(n.Body, keyword)
	})
}

func (m *Manager) filter(match func(Note) bool) []Note {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Note, 0)
	for _, n := range m.notes {
		if match(n) {
			out = append(out, n.clone())
		}
	}
	return out
}
