package core

import (
	"slices"
	"strconv"
)

// Note is the central entity of the domain.
// It is a short text record identified by a positive integer ID.
type Note struct {
	ID      int        `json:"id" yaml:"id"`
	Title   string     `json:"title" yaml:"title"`
	Body    string     `json:"body" yaml:"body"`
	Created *Timestamp `json:"created" yaml:"created"`
	Updated *Timestamp `json:"updated" yaml:"updated"`
	Tags    []string   `json:"tags" yaml:"tags"`
}

// HasTag reports whether the note carries the given tag.
func (n Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// clone returns a copy of n that shares no memory with it.
func (n Note) clone() Note {
	n.Tags = slices.Clone(n.Tags)
	if n.Tags == nil {
		n.Tags = []string{}
	}
	if n.Created != nil {
		c := *n.Created
		n.Created = &c
	}
	if n.Updated != nil {
		u := *n.Updated
		n.Updated = &u
	}
	return n
}

// Patch carries the replacement values for Manager.Update.
// Empty values keep the current field (see Manager.Update).
type Patch struct {
	Title string
	Body  string
	Tags  []string
}

// EventType represents the type of change in the collection.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
	EventReload EventType = "RELOAD"
)

// Event represents a change in the collection.
// ID is zero for EventReload.
type Event struct {
	Type      EventType
	ID        int
	Timestamp int64 // Unix timestamp
}

// String implements lifecycle.Event.
func (e Event) String() string {
	if e.ID == 0 {
		return string(e.Type)
	}
	return string(e.Type) + " " + strconv.Itoa(e.ID)
}
