package fs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aretw0/quill/pkg/core"
	"gopkg.in/yaml.v3"
)

// Serializer defines how to read and write a whole note collection in a specific file format.
type Serializer interface {
	// Decode reads a collection from r. The result is never nil.
	Decode(r io.Reader) ([]core.Note, error)
	// Encode converts the collection to bytes.
	Encode(notes []core.Note) ([]byte, error)
}

// DefaultSerializers returns the standard set of serializers keyed by extension.
func DefaultSerializers(strict bool) map[string]Serializer {
	return map[string]Serializer{
		".json": NewJSONSerializer(strict),
		".yaml": NewYAMLSerializer(strict),
		".yml":  NewYAMLSerializer(strict),
	}
}

// serializerFor picks the serializer for path, falling back to JSON.
func serializerFor(path string, serializers map[string]Serializer) Serializer {
	if s, ok := serializers[strings.ToLower(filepath.Ext(path))]; ok {
		return s
	}
	if s, ok := serializers[".json"]; ok {
		return s
	}
	return NewJSONSerializer(false)
}

// --- JSON Serializer ---

// JSONSerializer handles stores written as a JSON array of notes.
type JSONSerializer struct {
	// Strict rejects fields other than the known note fields.
	Strict bool
}

// NewJSONSerializer creates a new JSON serializer.
func NewJSONSerializer(strict bool) *JSONSerializer {
	return &JSONSerializer{Strict: strict}
}

func (s *JSONSerializer) Decode(r io.Reader) ([]core.Note, error) {
	decoder := json.NewDecoder(r)
	if s.Strict {
		decoder.DisallowUnknownFields()
	}

	var notes []core.Note
	if err := decoder.Decode(&notes); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("invalid json: unexpected data after notes array")
	}

	if notes == nil {
		notes = []core.Note{}
	}
	return notes, nil
}

func (s *JSONSerializer) Encode(notes []core.Note) ([]byte, error) {
	if notes == nil {
		notes = []core.Note{}
	}
	data, err := json.MarshalIndent(notes, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// --- YAML Serializer ---

// YAMLSerializer handles stores written as a YAML sequence of notes.
type YAMLSerializer struct {
	// Strict rejects fields other than the known note fields.
	Strict bool
}

// NewYAMLSerializer creates a new YAML serializer.
func NewYAMLSerializer(strict bool) *YAMLSerializer {
	return &YAMLSerializer{Strict: strict}
}

func (s *YAMLSerializer) Decode(r io.Reader) ([]core.Note, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(s.Strict)

	var notes []core.Note
	if err := decoder.Decode(&notes); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("invalid yaml: empty document")
		}
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}

	if notes == nil {
		notes = []core.Note{}
	}
	return notes, nil
}

func (s *YAMLSerializer) Encode(notes []core.Note) ([]byte, error) {
	if notes == nil {
		notes = []core.Note{}
	}
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(notes); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
