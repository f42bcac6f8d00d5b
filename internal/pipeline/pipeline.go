package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Loping1234/NLP/internal/cache"
	"github.com/Loping1234/NLP/internal/extract"
	"github.com/Loping1234/NLP/internal/lexicon"
	"github.com/Loping1234/NLP/internal/model"
	"github.com/Loping1234/NLP/internal/synth"
	"github.com/Loping1234/NLP/internal/textproc"
)

// Pipeline wires the full generation flow: normalize text, extract scored
// concepts, synthesize questions. One Pipeline serves many documents; each
// generation run gets its own synthesizer and RNG stream, so concurrent
// runs through the same Pipeline stay reproducible.
type Pipeline struct {
	pre       *textproc.Preprocessor
	extractor *extract.ConceptExtractor
	lex       lexicon.Lookup
	config    *model.Config
	log       *logrus.Logger
}

// New creates a pipeline from the configuration. Missing optional
// capabilities (entity model, lexicon) degrade silently to fallbacks.
func New(cfg *model.Config, log *logrus.Logger) *Pipeline {
	if log == nil {
		log = logrus.New()
	}

	var entities textproc.EntityRecognizer
	if cfg.Quiz.EntityHeuristic {
		entities = textproc.HeuristicRecognizer{}
	}
	pre := textproc.NewPreprocessor(cfg.Quiz.Language, entities, nil)

	return &Pipeline{
		pre:       pre,
		extractor: extract.NewConceptExtractor(pre),
		lex:       buildLexicon(cfg, log),
		config:    cfg,
		log:       log,
	}
}

// buildLexicon selects the synonym lookup collaborator. Every failure path
// lands on the empty lexicon: quizzes degrade to fewer distractors, never
// to an error.
func buildLexicon(cfg *model.Config, log *logrus.Logger) lexicon.Lookup {
	switch cfg.Lexicon.Provider {
	case "":
		return lexicon.Empty{}
	case "static":
		lex, err := lexicon.LoadStatic(cfg.Lexicon.Path)
		if err != nil {
			log.WithError(err).Warn("static lexicon unavailable, continuing without synonyms")
			return lexicon.Empty{}
		}
		return lex
	case "openai":
		lex, err := lexicon.NewOpenAILookup(lexicon.OpenAIConfig{
			APIKey:            cfg.Lexicon.APIKey,
			BaseURL:           cfg.Lexicon.BaseURL,
			Model:             cfg.Lexicon.Model,
			Timeout:           cfg.Lexicon.Timeout,
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}, buildCache(cfg), log)
		if err != nil {
			log.WithError(err).Warn("openai lexicon unavailable, continuing without synonyms")
			return lexicon.Empty{}
		}
		return lex
	default:
		log.WithField("provider", cfg.Lexicon.Provider).Warn("unknown lexicon provider, continuing without synonyms")
		return lexicon.Empty{}
	}
}

func buildCache(cfg *model.Config) cache.Cache {
	if !cfg.Cache.Enabled {
		return nil
	}
	return cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
}

// GenerateText builds a quiz from already-extracted plain text. An empty or
// degenerate document yields a quiz with zero questions, not an error.
func (p *Pipeline) GenerateText(ctx context.Context, source, text string, seed int64) (*model.Quiz, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	normalized := p.pre.Process(text)
	concepts := p.extractor.Extract(normalized, p.config.Quiz.MaxTerms)

	p.log.WithFields(logrus.Fields{
		"source":    source,
		"sentences": len(normalized.Sentences),
		"concepts":  len(concepts),
		"seed":      seed,
	}).Debug("extracted concepts")

	synthesizer := synth.NewSynthesizer(seed, p.lex)
	questions := synthesizer.CreateQuestions(ctx, concepts, p.config.Quiz)

	quiz := &model.Quiz{
		Source:      source,
		GeneratedAt: time.Now().UTC(),
		Seed:        seed,
		Counts:      model.CountByType(questions),
		Questions:   questions,
	}

	p.log.WithFields(logrus.Fields{
		"source":    source,
		"questions": quiz.Counts.Total(),
	}).Info("quiz generated")

	return quiz, nil
}

// GenerateFile loads a document from disk and builds a quiz from it
func (p *Pipeline) GenerateFile(ctx context.Context, path string, seed int64) (*model.Quiz, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	return p.GenerateText(ctx, doc.Path, doc.Text, seed)
}
