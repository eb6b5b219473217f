package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/quill"
)

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// printNotes writes one line per note, or a JSON array with --json.
func (a *app) printNotes(w io.Writer, notes []quill.Note) error {
	if a.jsonOut {
		if notes == nil {
			notes = []quill.Note{}
		}
		return writeJSON(w, notes)
	}

	for _, n := range notes {
		line := fmt.Sprintf("%d\t%s", n.ID, n.Title)
		if len(n.Tags) > 0 {
			line += "\t#" + strings.Join(n.Tags, " #")
		}
		fmt.Fprintln(w, line)
	}
	return nil
}

// printNote writes the full note, or a JSON object with --json.
func (a *app) printNote(w io.Writer, n *quill.Note) error {
	if a.jsonOut {
		return writeJSON(w, n)
	}

	fmt.Fprintf(w, "# %s\n", n.Title)
	fmt.Fprintf(w, "id: %d\n", n.ID)
	if n.Created != nil {
		fmt.Fprintf(w, "created: %s\n", n.Created)
	}
	if n.Updated != nil {
		fmt.Fprintf(w, "updated: %s\n", n.Updated)
	}
	if len(n.Tags) > 0 {
		fmt.Fprintf(w, "tags: %s\n", strings.Join(n.Tags, ", "))
	}
	if n.Body != "" {
		fmt.Fprintf(w, "\n%s\n", n.Body)
	}
	return nil
}
