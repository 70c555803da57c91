package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Definition maps a part of speech to the list of senses recorded for it.
type Definition map[string][]string

// ParseDefinition decodes a stored definition cell. Cells written by the
// ingestion pipeline are JSON objects like {"noun": ["a small domesticated
// feline"]}. A cell that does not start with '{' is accepted as a single
// bare sense so hand-edited word files still load.
func ParseDefinition(raw string) (Definition, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	if !strings.HasPrefix(trimmed, "{") {
		return Definition{"": {trimmed}}, nil
	}
	var def Definition
	if err := json.Unmarshal([]byte(trimmed), &def); err != nil {
		return nil, fmt.Errorf("malformed definition %q: %w", raw, err)
	}
	return def, nil
}

// Empty reports whether the definition carries no senses at all.
func (d Definition) Empty() bool {
	for _, senses := range d {
		for _, s := range senses {
			if strings.TrimSpace(s) != "" {
				return false
			}
		}
	}
	return true
}

// Encode serializes the definition back to its stored JSON form.
func (d Definition) Encode() (string, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("encode definition: %w", err)
	}
	return string(raw), nil
}

// Senses flattens all senses in part-of-speech order.
func (d Definition) Senses() []string {
	var out []string
	for _, pos := range d.parts() {
		out = append(out, d[pos]...)
	}
	return out
}

// String renders the definition for display. Parts of speech come out in
// sorted order so the rendering is stable for a given definition.
func (d Definition) String() string {
	var sb strings.Builder
	for i, pos := range d.parts() {
		if i > 0 {
			sb.WriteString(" | ")
		}
		if pos != "" {
			sb.WriteString(pos)
			sb.WriteString(": ")
		}
		sb.WriteString(strings.Join(d[pos], "; "))
	}
	return sb.String()
}

func (d Definition) parts() []string {
	parts := make([]string, 0, len(d))
	for pos := range d {
		parts = append(parts, pos)
	}
	sort.Strings(parts)
	return parts
}

// WordEntry is a single row of the word store, immutable once loaded.
type WordEntry struct {
	Word       string
	Definition Definition
}
