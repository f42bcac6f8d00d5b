package pipeline

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/Loping1234/NLP/internal/model"
)

const mlText = "Machine learning is a subset of artificial intelligence that focuses on algorithms that can learn from data. Supervised learning uses labeled data. Unsupervised learning finds patterns."

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestPipeline_GenerateText_Deterministic(t *testing.T) {
	cfg := model.DefaultConfig()
	p := New(cfg, quietLogger())

	first, err := p.GenerateText(context.Background(), "test", mlText, 42)
	if err != nil {
		t.Fatalf("GenerateText failed: %v", err)
	}
	second, err := p.GenerateText(context.Background(), "test", mlText, 42)
	if err != nil {
		t.Fatalf("GenerateText failed: %v", err)
	}

	if !reflect.DeepEqual(first.Questions, second.Questions) {
		t.Errorf("Same text and seed produced different questions")
	}
	if first.Counts != second.Counts {
		t.Errorf("Counts differ: %+v vs %+v", first.Counts, second.Counts)
	}
}

func TestPipeline_GenerateText_ProducesQuestions(t *testing.T) {
	cfg := model.DefaultConfig()
	p := New(cfg, quietLogger())

	quiz, err := p.GenerateText(context.Background(), "ml.txt", mlText, 42)
	if err != nil {
		t.Fatalf("GenerateText failed: %v", err)
	}

	if quiz.Counts.Total() == 0 {
		t.Fatal("Expected at least one question from a real document")
	}
	if quiz.Counts != model.CountByType(quiz.Questions) {
		t.Errorf("Counts field disagrees with questions: %+v", quiz.Counts)
	}
	if quiz.Source != "ml.txt" {
		t.Errorf("Expected source 'ml.txt', got %q", quiz.Source)
	}
	if quiz.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", quiz.Seed)
	}
	if quiz.GeneratedAt.IsZero() {
		t.Error("Expected a generation timestamp")
	}
}

func TestPipeline_GenerateText_EmptyDocument(t *testing.T) {
	cfg := model.DefaultConfig()
	p := New(cfg, quietLogger())

	quiz, err := p.GenerateText(context.Background(), "empty", "", 42)
	if err != nil {
		t.Fatalf("Empty input should not error: %v", err)
	}
	if len(quiz.Questions) != 0 {
		t.Errorf("Expected zero questions for empty input, got %d", len(quiz.Questions))
	}
}

func TestPipeline_GenerateText_StopwordOnlyDocument(t *testing.T) {
	cfg := model.DefaultConfig()
	p := New(cfg, quietLogger())

	quiz, err := p.GenerateText(context.Background(), "noise", "The and of the. It is was.", 42)
	if err != nil {
		t.Fatalf("Degenerate input should not error: %v", err)
	}
	if len(quiz.Questions) != 0 {
		t.Errorf("Expected zero questions for stopword-only input, got %d", len(quiz.Questions))
	}
}

func TestPipeline_GenerateText_CancelledContext(t *testing.T) {
	cfg := model.DefaultConfig()
	p := New(cfg, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.GenerateText(ctx, "test", mlText, 42); err == nil {
		t.Error("Expected an error for a cancelled context")
	}
}

func TestPipeline_GenerateText_SeedChangesShuffle(t *testing.T) {
	cfg := model.DefaultConfig()
	p := New(cfg, quietLogger())

	first, err := p.GenerateText(context.Background(), "test", mlText, 1)
	if err != nil {
		t.Fatalf("GenerateText failed: %v", err)
	}
	second, err := p.GenerateText(context.Background(), "test", mlText, 2)
	if err != nil {
		t.Fatalf("GenerateText failed: %v", err)
	}

	// Concept extraction is seed-independent, so the counts must agree even
	// though option orderings may not.
	if first.Counts != second.Counts {
		t.Errorf("Seed changed question counts: %+v vs %+v", first.Counts, second.Counts)
	}
}

func TestPipeline_GenerateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte(mlText), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := model.DefaultConfig()
	p := New(cfg, quietLogger())

	quiz, err := p.GenerateFile(context.Background(), path, 42)
	if err != nil {
		t.Fatalf("GenerateFile failed: %v", err)
	}
	if quiz.Counts.Total() == 0 {
		t.Error("Expected questions from document file")
	}
	if quiz.Source != path {
		t.Errorf("Expected source %q, got %q", path, quiz.Source)
	}
}

func TestPipeline_GenerateFile_MissingFile(t *testing.T) {
	cfg := model.DefaultConfig()
	p := New(cfg, quietLogger())

	if _, err := p.GenerateFile(context.Background(), "/nonexistent/doc.txt", 42); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestBuildLexicon_FallsBackToEmpty(t *testing.T) {
	tests := []struct {
		name string
		cfg  model.LexiconConfig
	}{
		{"no provider", model.LexiconConfig{}},
		{"missing static path", model.LexiconConfig{Provider: "static", Path: "/nonexistent.yaml"}},
		{"openai without key", model.LexiconConfig{Provider: "openai"}},
		{"unknown provider", model.LexiconConfig{Provider: "wordnet"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := model.DefaultConfig()
			cfg.Lexicon = tt.cfg
			lex := buildLexicon(cfg, quietLogger())
			if lex == nil {
				t.Fatal("buildLexicon returned nil")
			}
			if got := lex.Synonyms(context.Background(), "term"); len(got) != 0 {
				t.Errorf("Fallback lexicon should return no synonyms, got %v", got)
			}
		})
	}
}
