package synth

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/Loping1234/NLP/internal/model"
)

func testConfig(mcq, tf, fill, short int) model.QuizConfig {
	return model.QuizConfig{
		NumMCQ:           mcq,
		NumTrueFalse:     tf,
		NumFillBlank:     fill,
		NumShortAnswer:   short,
		MaxOptionsPerMCQ: 4,
	}
}

func conceptWith(term string, sentences ...string) model.Concept {
	return model.Concept{
		Term:                term,
		SupportingSentences: sentences,
		ImportanceScore:     0.1,
	}
}

func TestSynthesizer_CreateQuestions_OneOfEachType(t *testing.T) {
	concepts := []model.Concept{
		{
			Term:                 "machine learning",
			SupportingSentences:  []string{"Machine learning is a subset of artificial intelligence."},
			DefinitionCandidates: []string{"Machine learning is a subset of artificial intelligence."},
			ImportanceScore:      0.2,
		},
		conceptWith("data", "Supervised learning uses labeled data."),
	}

	s := NewSynthesizer(42, nil)
	questions := s.CreateQuestions(context.Background(), concepts, testConfig(1, 1, 1, 1))

	if len(questions) != 4 {
		t.Fatalf("Expected exactly 4 questions, got %d", len(questions))
	}

	counts := model.CountByType(questions)
	if counts.MCQ != 1 || counts.TrueFalse != 1 || counts.FillBlank != 1 || counts.ShortAnswer != 1 {
		t.Errorf("Expected one question of each type, got %+v", counts)
	}
}

func TestSynthesizer_CreateQuestions_Deterministic(t *testing.T) {
	concepts := []model.Concept{
		{
			Term:                 "machine learning",
			SupportingSentences:  []string{"Machine learning is a subset of artificial intelligence."},
			DefinitionCandidates: []string{"Machine learning is a subset of artificial intelligence."},
			NamedEntities:        []string{"Turing", "Shannon", "McCarthy"},
			ImportanceScore:      0.2,
		},
		conceptWith("data", "Supervised learning uses labeled data."),
		conceptWith("patterns", "Unsupervised learning finds patterns."),
	}

	first := NewSynthesizer(7, nil).CreateQuestions(context.Background(), concepts, testConfig(3, 3, 3, 3))
	second := NewSynthesizer(7, nil).CreateQuestions(context.Background(), concepts, testConfig(3, 3, 3, 3))

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Same seed produced different question lists")
	}

	third := NewSynthesizer(8, nil).CreateQuestions(context.Background(), concepts, testConfig(3, 3, 3, 3))
	if len(third) != len(first) {
		t.Errorf("Different seed changed question count: %d vs %d", len(third), len(first))
	}
}

func TestSynthesizer_MCQ_CorrectAnswerAppearsExactlyOnce(t *testing.T) {
	concepts := []model.Concept{
		{
			Term:                 "machine learning",
			SupportingSentences:  []string{"Machine learning is a subset of artificial intelligence."},
			DefinitionCandidates: []string{"Machine learning is a subset of artificial intelligence."},
			NamedEntities:        []string{"Turing", "Shannon", "McCarthy"},
			ImportanceScore:      0.2,
		},
	}

	questions := NewSynthesizer(42, nil).CreateQuestions(context.Background(), concepts, testConfig(1, 0, 0, 0))
	if len(questions) != 1 {
		t.Fatalf("Expected 1 MCQ, got %d", len(questions))
	}

	q := questions[0]
	if q.Type != model.TypeMCQ {
		t.Fatalf("Expected mcq, got %s", q.Type)
	}
	if q.Text != "What is 'machine learning'?" {
		t.Errorf("Unexpected prompt: %q", q.Text)
	}

	occurrences := 0
	for _, option := range q.Options {
		if option == q.CorrectAnswer {
			occurrences++
		}
	}
	if occurrences != 1 {
		t.Errorf("Expected correct answer exactly once in options, found %d times in %v", occurrences, q.Options)
	}
	if len(q.Options) > 4 {
		t.Errorf("Expected at most 4 options, got %d", len(q.Options))
	}
}

func TestSynthesizer_MCQ_SkippedWithoutUsableSentence(t *testing.T) {
	concepts := []model.Concept{{Term: "orphan", ImportanceScore: 0.5}}

	questions := NewSynthesizer(42, nil).CreateQuestions(context.Background(), concepts, testConfig(1, 1, 1, 1))
	if len(questions) != 0 {
		t.Errorf("Expected no questions for a concept without sentences, got %d", len(questions))
	}
}

func TestSynthesizer_TrueFalse_NumericPerturbation(t *testing.T) {
	concepts := []model.Concept{
		{
			Term:                "boiling point",
			SupportingSentences: []string{"Water boils at 100 degrees under standard pressure."},
			NumericalFacts:      []string{"100"},
			ImportanceScore:     0.1,
		},
	}

	questions := NewSynthesizer(42, nil).CreateQuestions(context.Background(), concepts, testConfig(0, 1, 0, 0))
	if len(questions) != 1 {
		t.Fatalf("Expected 1 true/false question, got %d", len(questions))
	}

	q := questions[0]
	if q.CorrectAnswer != "False" {
		t.Errorf("Expected False for perturbed statement, got %q", q.CorrectAnswer)
	}
	if !strings.Contains(q.Text, "101") {
		t.Errorf("Expected perturbed value 101 in statement: %q", q.Text)
	}
	if strings.Contains(q.Text, "100") {
		t.Errorf("Original value should be replaced: %q", q.Text)
	}
	if !reflect.DeepEqual(q.Options, []string{"True", "False"}) {
		t.Errorf("Unexpected options: %v", q.Options)
	}
}

func TestSynthesizer_TrueFalse_NoNumericFactStaysTrue(t *testing.T) {
	concepts := []model.Concept{
		conceptWith("data", "Supervised learning uses labeled data."),
	}

	questions := NewSynthesizer(42, nil).CreateQuestions(context.Background(), concepts, testConfig(0, 1, 0, 0))
	if len(questions) != 1 {
		t.Fatalf("Expected 1 question, got %d", len(questions))
	}

	q := questions[0]
	if q.CorrectAnswer != "True" {
		t.Errorf("Expected True, got %q", q.CorrectAnswer)
	}
	if q.Text != "Supervised learning uses labeled data." {
		t.Errorf("Statement should be unmodified: %q", q.Text)
	}
}

func TestSynthesizer_TrueFalse_FactMatchesWholeNumbersOnly(t *testing.T) {
	concepts := []model.Concept{
		{
			Term:                "scale",
			SupportingSentences: []string{"The scale runs to 100 units."},
			NumericalFacts:      []string{"10", "100"},
			ImportanceScore:     0.1,
		},
	}

	questions := NewSynthesizer(42, nil).CreateQuestions(context.Background(), concepts, testConfig(0, 1, 0, 0))
	if len(questions) != 1 {
		t.Fatalf("Expected 1 question, got %d", len(questions))
	}

	// "10" occurs only inside "100", so it must not match; "100" does and
	// gets perturbed to 101.
	q := questions[0]
	if q.CorrectAnswer != "False" {
		t.Errorf("Expected False, got %q", q.CorrectAnswer)
	}
	if q.Text != "The scale runs to 101 units." {
		t.Errorf("Expected whole-number perturbation, got %q", q.Text)
	}
}

func TestSynthesizer_TrueFalse_NoWholeNumberMatchStaysTrue(t *testing.T) {
	concepts := []model.Concept{
		{
			Term:                "scale",
			SupportingSentences: []string{"The scale runs to 100 units."},
			NumericalFacts:      []string{"10"},
			ImportanceScore:     0.1,
		},
	}

	questions := NewSynthesizer(42, nil).CreateQuestions(context.Background(), concepts, testConfig(0, 1, 0, 0))
	q := questions[0]
	if q.CorrectAnswer != "True" {
		t.Errorf("Expected True, got %q", q.CorrectAnswer)
	}
	if q.Text != "The scale runs to 100 units." {
		t.Errorf("Statement should be unmodified: %q", q.Text)
	}
}

func TestSynthesizer_TrueFalse_FactNotInSentenceStaysTrue(t *testing.T) {
	concepts := []model.Concept{
		{
			Term:                "data",
			SupportingSentences: []string{"Supervised learning uses labeled data."},
			NumericalFacts:      []string{"1956"}, // elsewhere in the corpus
			ImportanceScore:     0.1,
		},
	}

	questions := NewSynthesizer(42, nil).CreateQuestions(context.Background(), concepts, testConfig(0, 1, 0, 0))
	if questions[0].CorrectAnswer != "True" {
		t.Errorf("Expected True when no fact occurs in the sentence, got %q", questions[0].CorrectAnswer)
	}
}

func TestSynthesizer_FillBlank_TermOccurs(t *testing.T) {
	concepts := []model.Concept{
		conceptWith("machine learning", "Machine learning is a subset of artificial intelligence."),
	}

	questions := NewSynthesizer(42, nil).CreateQuestions(context.Background(), concepts, testConfig(0, 0, 1, 0))
	if len(questions) != 1 {
		t.Fatalf("Expected 1 fill-blank question, got %d", len(questions))
	}

	q := questions[0]
	if q.Text != BlankMarker+" is a subset of artificial intelligence." {
		t.Errorf("Unexpected blanked text: %q", q.Text)
	}
	if strings.Count(q.Text, BlankMarker) != 1 {
		t.Errorf("Expected the blank marker exactly once: %q", q.Text)
	}
	if q.CorrectAnswer != "machine learning" {
		t.Errorf("Expected answer 'machine learning', got %q", q.CorrectAnswer)
	}
	if q.Options != nil {
		t.Errorf("Fill-blank questions carry no options, got %v", q.Options)
	}
}

func TestSynthesizer_FillBlank_FallbackToLongestWord(t *testing.T) {
	// The bigram never occurs verbatim in the sentence, so the longest
	// word gets blanked instead and becomes the expected answer.
	concepts := []model.Concept{
		conceptWith("learning patterns", "Unsupervised approaches discover hidden regularities."),
	}

	questions := NewSynthesizer(42, nil).CreateQuestions(context.Background(), concepts, testConfig(0, 0, 1, 0))
	if len(questions) != 1 {
		t.Fatalf("Expected 1 question, got %d", len(questions))
	}

	q := questions[0]
	if q.CorrectAnswer != "regularities." {
		t.Errorf("Expected lowercased longest word, got %q", q.CorrectAnswer)
	}
	if !strings.Contains(q.Text, BlankMarker) {
		t.Errorf("Expected blank marker in fallback text: %q", q.Text)
	}
}

func TestSynthesizer_ShortAnswer_PrefersDefinition(t *testing.T) {
	definition := "Entropy refers to disorder in a system."
	concepts := []model.Concept{
		{
			Term:                 "entropy",
			SupportingSentences:  []string{definition},
			DefinitionCandidates: []string{definition},
			ImportanceScore:      0.1,
		},
	}

	questions := NewSynthesizer(42, nil).CreateQuestions(context.Background(), concepts, testConfig(0, 0, 0, 1))
	if len(questions) != 1 {
		t.Fatalf("Expected 1 short-answer question, got %d", len(questions))
	}

	q := questions[0]
	if q.Text != "Explain 'entropy' in one or two sentences." {
		t.Errorf("Unexpected prompt: %q", q.Text)
	}
	if q.CorrectAnswer != definition {
		t.Errorf("Expected definition as answer, got %q", q.CorrectAnswer)
	}
}

func TestSynthesizer_CreateQuestions_ConceptsReusedAcrossTypes(t *testing.T) {
	concepts := []model.Concept{
		conceptWith("data", "Supervised learning uses labeled data."),
	}

	questions := NewSynthesizer(42, nil).CreateQuestions(context.Background(), concepts, testConfig(1, 1, 1, 1))

	// Passes are independent: one concept can back all four types.
	if len(questions) != 4 {
		t.Errorf("Expected the single concept to serve all four passes, got %d questions", len(questions))
	}
}

func TestSynthesizer_CreateQuestions_CountsHonored(t *testing.T) {
	var concepts []model.Concept
	for _, term := range []string{"alpha", "beta", "gamma", "delta"} {
		concepts = append(concepts, conceptWith(term, "The "+term+" value matters here."))
	}

	questions := NewSynthesizer(42, nil).CreateQuestions(context.Background(), concepts, testConfig(2, 1, 0, 0))
	counts := model.CountByType(questions)
	if counts.MCQ != 2 || counts.TrueFalse != 1 || counts.FillBlank != 0 || counts.ShortAnswer != 0 {
		t.Errorf("Expected counts 2/1/0/0, got %+v", counts)
	}
}
