package lexicon

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lookup resolves alternate surface forms for a term. This is an optional
// capability: implementations degrade to an empty result instead of
// surfacing errors to the caller.
//
// Multi-word terms are passed with spaces; each implementation owns its own
// joiner convention internally.
type Lookup interface {
	Synonyms(ctx context.Context, term string) []string
}

// Empty is the no-thesaurus fallback: every lookup misses
type Empty struct{}

// Synonyms returns nothing
func (Empty) Synonyms(context.Context, string) []string { return nil }

// joiner is the multi-word key convention used by thesaurus-style tables
const joiner = "_"

// Static serves synonyms from a YAML table loaded at construction:
//
//	machine_learning: [statistical learning, automated learning]
//	data: [information, records]
//
// Keys may use either spaces or underscores between words.
type Static struct {
	entries map[string][]string
}

// NewStatic creates a static lexicon from an in-memory table
func NewStatic(entries map[string][]string) *Static {
	normalized := make(map[string][]string, len(entries))
	for term, alts := range entries {
		normalized[normalizeKey(term)] = alts
	}
	return &Static{entries: normalized}
}

// LoadStatic reads a YAML synonym table from disk
func LoadStatic(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}

	var entries map[string][]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}
	return NewStatic(entries), nil
}

// Synonyms returns the table entry for the term, in table order
func (s *Static) Synonyms(_ context.Context, term string) []string {
	alts, ok := s.entries[normalizeKey(term)]
	if !ok {
		return nil
	}
	out := make([]string, len(alts))
	for i, alt := range alts {
		out[i] = strings.ReplaceAll(alt, joiner, " ")
	}
	return out
}

func normalizeKey(term string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(term), " ", joiner))
}
