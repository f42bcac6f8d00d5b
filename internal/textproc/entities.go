package textproc

import (
	"regexp"
	"strings"
)

// EntityRecognizer extracts named entity strings from a text span.
// Implementations return an empty result when no model is available; entity
// recognition is an optional capability, never a hard dependency.
type EntityRecognizer interface {
	Recognize(text string) []string
}

// NoopRecognizer is the default recognizer: no model loaded, no entities.
type NoopRecognizer struct{}

// Recognize returns no entities
func (NoopRecognizer) Recognize(string) []string { return nil }

var capitalizedSpanRe = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)

// HeuristicRecognizer approximates entity recognition with capitalized-span
// matching. Single capitalized words at the start of a sentence are ignored
// since those are usually just ordinary sentence-initial words.
type HeuristicRecognizer struct{}

// Recognize returns candidate entities in first-appearance order, deduplicated
func (HeuristicRecognizer) Recognize(text string) []string {
	var entities []string
	seen := make(map[string]struct{})

	for _, loc := range capitalizedSpanRe.FindAllStringIndex(text, -1) {
		span := text[loc[0]:loc[1]]
		if !strings.Contains(span, " ") && startsSentence(text, loc[0]) {
			continue
		}
		key := strings.ToLower(span)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		entities = append(entities, span)
	}

	return entities
}

// startsSentence reports whether position pos begins the text or follows a
// sentence terminator.
func startsSentence(text string, pos int) bool {
	for i := pos - 1; i >= 0; i-- {
		switch text[i] {
		case ' ', '\t', '\n', '\r':
			continue
		case '.', '!', '?':
			return true
		default:
			return false
		}
	}
	return true
}
