package synth

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/Loping1234/NLP/internal/assess"
	"github.com/Loping1234/NLP/internal/distract"
	"github.com/Loping1234/NLP/internal/lexicon"
	"github.com/Loping1234/NLP/internal/model"
)

// BlankMarker replaces the blanked-out span in fill-in-blank questions
const BlankMarker = "_____"

// Synthesizer turns concepts into question records. It owns a single seeded
// RNG stream shared with its distractor generator, consumed in a fixed
// order (numeric offset shuffle, then option shuffle), so an identical
// (concepts, config, seed) triple reproduces identical questions.
//
// Not safe for concurrent use; concurrent runs need their own Synthesizer.
type Synthesizer struct {
	rng        *rand.Rand
	distractor *distract.Generator
}

// NewSynthesizer creates a synthesizer with its own RNG stream. A nil
// lexicon selects the empty fallback.
func NewSynthesizer(seed int64, lex lexicon.Lookup) *Synthesizer {
	rng := rand.New(rand.NewSource(seed))
	return &Synthesizer{
		rng:        rng,
		distractor: distract.NewGenerator(rng, lex),
	}
}

// CreateQuestions runs four independent passes over the concepts, one per
// question type, each emitting until its configured count is met or the
// concepts run out. Passes are independent on purpose: a concept may back
// questions of several types.
func (s *Synthesizer) CreateQuestions(ctx context.Context, concepts []model.Concept, cfg model.QuizConfig) []model.Question {
	var questions []model.Question
	poolTerms := lo.Map(concepts, func(c model.Concept, _ int) string { return c.Term })

	emitted := 0
	for _, concept := range concepts {
		if emitted >= cfg.NumMCQ {
			break
		}
		if q := s.makeMCQ(ctx, concept, poolTerms, cfg.MaxOptionsPerMCQ); q != nil {
			questions = append(questions, *q)
			emitted++
		}
	}

	emitted = 0
	for _, concept := range concepts {
		if emitted >= cfg.NumTrueFalse {
			break
		}
		if q := s.makeTrueFalse(concept); q != nil {
			questions = append(questions, *q)
			emitted++
		}
	}

	emitted = 0
	for _, concept := range concepts {
		if emitted >= cfg.NumFillBlank {
			break
		}
		if q := s.makeFillBlank(concept); q != nil {
			questions = append(questions, *q)
			emitted++
		}
	}

	emitted = 0
	for _, concept := range concepts {
		if emitted >= cfg.NumShortAnswer {
			break
		}
		if q := s.makeShortAnswer(concept); q != nil {
			questions = append(questions, *q)
			emitted++
		}
	}

	return questions
}

// makeMCQ asks for the term's definition with shuffled options
func (s *Synthesizer) makeMCQ(ctx context.Context, concept model.Concept, poolTerms []string, maxOptions int) *model.Question {
	sentence := firstSentence(concept.DefinitionCandidates, concept.SupportingSentences)
	if sentence == "" {
		return nil
	}

	correct := concept.Term
	if len(concept.DefinitionCandidates) > 0 {
		correct = concept.DefinitionCandidates[0]
	}

	distractors := s.distractor.PickPlausible(ctx, correct, poolTerms, concept.NamedEntities, concept.NumericalFacts, maxOptions)
	options := append([]string{correct}, distractors...)
	s.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &model.Question{
		Type:            model.TypeMCQ,
		Text:            fmt.Sprintf("What is '%s'?", concept.Term),
		Options:         options,
		CorrectAnswer:   correct,
		Explanation:     sentence,
		Difficulty:      assess.Assess(concept.ImportanceScore, wordCount(sentence)),
		SourceReference: sentence,
	}
}

// makeTrueFalse perturbs the first numeric fact found in the base sentence.
// With a matching number the statement is always falsified (value+1), never
// probabilistically; without one it stays true as written. Facts match on
// word boundaries so "10" never rewrites the middle of "100".
func (s *Synthesizer) makeTrueFalse(concept model.Concept) *model.Question {
	sentence := firstSentence(concept.SupportingSentences)
	if sentence == "" {
		return nil
	}

	statement := sentence
	correct := "True"
	for _, literal := range concept.NumericalFacts {
		pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(literal) + `\b`)
		loc := pattern.FindStringIndex(statement)
		if loc == nil {
			continue
		}
		if value, err := strconv.ParseFloat(literal, 64); err == nil {
			statement = statement[:loc[0]] + strconv.Itoa(int(value)+1) + statement[loc[1]:]
			correct = "False"
		}
		break
	}

	return &model.Question{
		Type:            model.TypeTrueFalse,
		Text:            statement,
		Options:         []string{"True", "False"},
		CorrectAnswer:   correct,
		Explanation:     sentence,
		Difficulty:      assess.Assess(concept.ImportanceScore, wordCount(sentence)),
		SourceReference: sentence,
	}
}

// makeFillBlank blanks the term's first occurrence; when the term does not
// occur literally (bigrams sometimes don't), the longest word stands in.
func (s *Synthesizer) makeFillBlank(concept model.Concept) *model.Question {
	sentence := firstSentence(concept.SupportingSentences)
	if sentence == "" {
		return nil
	}

	var blanked, correct string
	lowered := strings.ToLower(sentence)
	termLower := strings.ToLower(concept.Term)

	if idx := strings.Index(lowered, termLower); idx >= 0 {
		blanked = sentence[:idx] + BlankMarker + sentence[idx+len(termLower):]
		correct = concept.Term
	} else {
		target := longestWord(sentence)
		blanked = strings.Replace(sentence, target, BlankMarker, 1)
		correct = strings.ToLower(target)
	}

	return &model.Question{
		Type:            model.TypeFillBlank,
		Text:            blanked,
		CorrectAnswer:   correct,
		Explanation:     sentence,
		Difficulty:      assess.Assess(concept.ImportanceScore, wordCount(sentence)),
		SourceReference: sentence,
	}
}

// makeShortAnswer asks for a free-form explanation of the term
func (s *Synthesizer) makeShortAnswer(concept model.Concept) *model.Question {
	sentence := firstSentence(concept.SupportingSentences)
	if sentence == "" {
		return nil
	}

	correct := concept.Term
	if len(concept.DefinitionCandidates) > 0 {
		correct = concept.DefinitionCandidates[0]
	}

	return &model.Question{
		Type:            model.TypeShortAnswer,
		Text:            fmt.Sprintf("Explain '%s' in one or two sentences.", concept.Term),
		CorrectAnswer:   correct,
		Explanation:     sentence,
		Difficulty:      assess.Assess(concept.ImportanceScore, wordCount(sentence)),
		SourceReference: sentence,
	}
}

// firstSentence returns the first entry of the first non-empty list
func firstSentence(lists ...[]string) string {
	for _, list := range lists {
		if len(list) > 0 {
			return list[0]
		}
	}
	return ""
}

// longestWord returns the longest whitespace-delimited word, first wins
func longestWord(sentence string) string {
	var longest string
	for _, word := range strings.Fields(sentence) {
		if len(word) > len(longest) {
			longest = word
		}
	}
	return longest
}

func wordCount(sentence string) int {
	return len(strings.Fields(sentence))
}
