package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// document is the on-disk YAML layout:
//
//	lodges:
//	  - {id: 1, name: Capanna Margherita, locality: Alagna, altitude: 4554, capacity: 70}
//	connections:
//	  - {id: 10, lodge1: 1, lodge2: 2, distance: 6.5, difficulty: hard, duration: "04:00:00", year: 1998}
type document struct {
	Lodges      []Lodge `yaml:"lodges"`
	Connections []Link  `yaml:"connections"`
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Memory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	m, err := ParseYAML(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}

	return m, nil
}

// ParseYAML decodes a YAML catalog. Unknown fields are rejected, duplicate
// lodge ids yield ErrDuplicateLodge and malformed records ErrInvalidRecord.
// Dangling lodge references are reported at query time (ErrUnknownLodge).
func ParseYAML(r io.Reader) (*Memory, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if _, err := NewIndex(doc.Lodges); err != nil {
		return nil, err
	}
	for _, l := range doc.Lodges {
		if err := l.Validate(); err != nil {
			return nil, err
		}
	}
	for _, l := range doc.Connections {
		if err := l.Validate(); err != nil {
			return nil, err
		}
	}

	return NewMemory(doc.Lodges, doc.Connections), nil
}

// WriteYAML encodes m in the layout ParseYAML reads.
func WriteYAML(w io.Writer, m *Memory) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Lodges: m.Lodges(), Connections: m.Links()}); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}
