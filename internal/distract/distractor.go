package distract

import (
	"context"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/Loping1234/NLP/internal/lexicon"
)

// Generator produces plausible wrong answers for multiple-choice questions.
// All randomness is drawn from the run-owned RNG passed at construction, so
// identical seeds reproduce identical distractor sets. Not safe for
// concurrent use: the RNG stream is shared with the option shuffler.
type Generator struct {
	rng *rand.Rand
	lex lexicon.Lookup
}

// numericOffsets is the fixed perturbation set for numeric answers
var numericOffsets = []float64{-1, 1, -10, 10, -0.5, 0.5}

// NewGenerator creates a distractor generator. A nil lexicon selects the
// empty fallback.
func NewGenerator(rng *rand.Rand, lex lexicon.Lookup) *Generator {
	if lex == nil {
		lex = lexicon.Empty{}
	}
	return &Generator{rng: rng, lex: lex}
}

// PickPlausible returns at most maxOptions-1 distractors, none of them
// equal (case-insensitive) to the correct answer or to each other. Numeric
// answers get perturbed values; everything else goes through the lexicon,
// then corpus entities, then the concept term pool.
func (g *Generator) PickPlausible(ctx context.Context, correctAnswer string, poolTerms, namedEntities, numericalFacts []string, maxOptions int) []string {
	quota := maxOptions - 1
	if quota <= 0 {
		return nil
	}

	// ParseFloat also accepts "inf", "infinity" and "nan"; those are words,
	// not perturbable numbers.
	if value, err := strconv.ParseFloat(correctAnswer, 64); err == nil && !math.IsInf(value, 0) && !math.IsNaN(value) {
		return g.numeric(value, correctAnswer, quota)
	}
	return g.lexical(ctx, correctAnswer, poolTerms, namedEntities, quota)
}

// numeric perturbs the value by the fixed offset set in seeded-random order
func (g *Generator) numeric(value float64, correctAnswer string, quota int) []string {
	offsets := make([]float64, len(numericOffsets))
	copy(offsets, numericOffsets)
	g.rng.Shuffle(len(offsets), func(i, j int) {
		offsets[i], offsets[j] = offsets[j], offsets[i]
	})

	picker := newPicker(correctAnswer, quota)
	for _, offset := range offsets {
		if picker.full() {
			break
		}
		picker.add(formatNumber(value + offset))
	}
	return picker.out
}

// lexical builds distractors from the synonym lookup, then named entities,
// then other concepts' terms. Each stage stops early once the quota fills;
// a failed or empty lookup just means the later stages carry the load.
func (g *Generator) lexical(ctx context.Context, correctAnswer string, poolTerms, namedEntities []string, quota int) []string {
	picker := newPicker(correctAnswer, quota)

	for _, form := range g.lex.Synonyms(ctx, correctAnswer) {
		if picker.full() {
			break
		}
		picker.add(form)
	}
	for _, entity := range namedEntities {
		if picker.full() {
			break
		}
		picker.add(entity)
	}
	for _, term := range poolTerms {
		if picker.full() {
			break
		}
		picker.add(term)
	}
	return picker.out
}

// formatNumber renders whole values as integers, others as two decimals
func formatNumber(value float64) string {
	if value == math.Trunc(value) {
		return strconv.Itoa(int(value))
	}
	return strconv.FormatFloat(value, 'f', 2, 64)
}

// picker accumulates candidates, rejecting duplicates and the correct
// answer case-insensitively.
type picker struct {
	out   []string
	seen  map[string]struct{}
	quota int
}

func newPicker(correctAnswer string, quota int) *picker {
	return &picker{
		seen:  map[string]struct{}{strings.ToLower(correctAnswer): {}},
		quota: quota,
	}
}

func (p *picker) add(candidate string) {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return
	}
	key := strings.ToLower(candidate)
	if _, dup := p.seen[key]; dup {
		return
	}
	p.seen[key] = struct{}{}
	p.out = append(p.out, candidate)
}

func (p *picker) full() bool {
	return len(p.out) >= p.quota
}
