// Package quill is the Composition Root for the Quill note store.
//
// It connects the core note manager (Domain Layer) with the flat-file
// adapter (Persistence Layer).
//
// Philosophy:
//
// Quill keeps a personal collection of short notes in one file you can read,
// diff and back up. The whole collection is held in memory and rewritten on
// every change; there is no index and no server. The file is the database.
//
// Features:
//
//   - **Single File**: JSON by default, YAML when the path ends in .yaml/.yml.
//   - **Write-Through**: every create, update and delete persists before returning.
//   - **Search**: by creation date range, by tag set, by keyword.
//   - **Watch**: reload when another process edits the file.
//   - **Extensible**: plug any storage through `core.Repository`.
//
// Usage:
//
//	m, err := quill.Open(ctx, "notes.json", quill.WithLogger(logger))
//
//	note, err := m.Create(ctx, "Groceries", "milk, eggs", []string{"home"})
//	work := m.SearchByTags([]string{"work"})
package quill
