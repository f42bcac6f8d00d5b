package extract

import (
	"regexp"
	"strings"

	"github.com/samber/lo"

	"github.com/Loping1234/NLP/internal/model"
	"github.com/Loping1234/NLP/internal/score"
	"github.com/Loping1234/NLP/internal/textproc"
)

// DefaultMaxTerms caps how many top-scored terms become concepts
const DefaultMaxTerms = 50

// ConceptExtractor selects top-scored terms and attaches their evidence:
// supporting sentences, definition candidates, corpus entities and numbers.
type ConceptExtractor struct {
	pre    *textproc.Preprocessor
	scorer *score.TermScorer
}

var numberRe = regexp.MustCompile(`\b\d+(?:\.\d+)?\b`)

// NewConceptExtractor creates an extractor using the given preprocessor
// for the optional entity-recognition capability.
func NewConceptExtractor(pre *textproc.Preprocessor) *ConceptExtractor {
	return &ConceptExtractor{
		pre:    pre,
		scorer: score.NewTermScorer(),
	}
}

// Extract returns up to maxTerms concepts ordered by descending importance.
// Zero concepts is a valid outcome for empty or degenerate input.
func (e *ConceptExtractor) Extract(normalized textproc.NormalizedText, maxTerms int) []model.Concept {
	if len(normalized.Tokens) == 0 {
		return nil
	}
	if maxTerms <= 0 {
		maxTerms = DefaultMaxTerms
	}

	documents := lo.Map(normalized.Tokens, func(tokens []string, _ int) []string {
		return score.WithBigrams(tokens)
	})

	termScores := e.scorer.Score(documents)
	ranked := score.Ranked(termScores)
	if len(ranked) > maxTerms {
		ranked = ranked[:maxTerms]
	}

	supporting := e.supportingSentences(ranked, normalized.Sentences)

	// Entities and numeric literals are corpus-wide and shared by every
	// concept, not recomputed per term.
	fullText := strings.Join(normalized.Sentences, " ")
	entities := e.pre.NamedEntities(fullText)
	numbers := numberRe.FindAllString(fullText, -1)

	concepts := make([]model.Concept, 0, len(ranked))
	for _, term := range ranked {
		sentences := supporting[term]
		var definitions []string
		for _, sentence := range sentences {
			if looksLikeDefinition(term, sentence) {
				definitions = append(definitions, sentence)
			}
		}
		if len(sentences) > 5 {
			sentences = sentences[:5]
		}
		concepts = append(concepts, model.Concept{
			Term:                 term,
			SupportingSentences:  sentences,
			DefinitionCandidates: definitions,
			NamedEntities:        entities,
			NumericalFacts:       numbers,
			ImportanceScore:      termScores[term],
		})
	}
	return concepts
}

// supportingSentences collects, per term, the sentences containing it as a
// whole word or phrase, preserving source order.
func (e *ConceptExtractor) supportingSentences(terms []string, sentences []string) map[string][]string {
	patterns := make(map[string]*regexp.Regexp, len(terms))
	for _, term := range terms {
		patterns[term] = regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
	}

	matches := make(map[string][]string, len(terms))
	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		for _, term := range terms {
			if patterns[term].MatchString(lower) {
				matches[term] = append(matches[term], sentence)
			}
		}
	}
	return matches
}

// looksLikeDefinition reports whether the sentence defines the term using
// a copula or definitional phrasing.
func looksLikeDefinition(term, sentence string) bool {
	escaped := regexp.QuoteMeta(term)
	patterns := []string{
		`\b` + escaped + `\s+is\s+(an|a|the)\b`,
		`\b` + escaped + `\s+refers\s+to\b`,
		`\b` + escaped + `\s+can\s+be\s+defined\s+as\b`,
	}
	lower := strings.ToLower(sentence)
	for _, p := range patterns {
		if regexp.MustCompile(p).MatchString(lower) {
			return true
		}
	}
	return false
}
