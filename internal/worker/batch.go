package worker

import (
	"context"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Loping1234/NLP/internal/model"
)

// Generator abstracts a quiz pipeline for batch runs
type Generator interface {
	GenerateFile(ctx context.Context, path string, seed int64) (*model.Quiz, error)
}

// documentExtensions are the file types batch runs pick up from a directory
var documentExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".html": true,
	".htm":  true,
}

// QuizJob generates one quiz from one document
type QuizJob struct {
	Path      string
	Seed      int64
	Generator Generator
}

// Execute runs the generation for this job's document
func (j *QuizJob) Execute(ctx context.Context) Result {
	quiz, err := j.Generator.GenerateFile(ctx, j.Path, j.Seed)
	return &QuizResult{Path: j.Path, Quiz: quiz, Error: err}
}

// QuizResult is the outcome of one document's generation
type QuizResult struct {
	Path  string
	Quiz  *model.Quiz
	Error error
}

// GetError returns the job error, if any
func (r *QuizResult) GetError() error {
	return r.Error
}

// BatchProcessor generates quizzes for many documents concurrently. Every
// document gets its own RNG stream via a derived seed, so parallel runs
// never interleave draws and each document's quiz stays reproducible.
type BatchProcessor struct {
	generator   Generator
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(generator Generator, concurrency int) *BatchProcessor {
	return &BatchProcessor{generator: generator, concurrency: concurrency}
}

// ProcessPaths generates quizzes for the given documents concurrently
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string, baseSeed int64) []*QuizResult {
	if len(paths) == 0 {
		return []*QuizResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&QuizJob{
			Path:      path,
			Seed:      DeriveSeed(baseSeed, filepath.Base(path)),
			Generator: b.generator,
		})
	}

	results := pool.Wait()
	quizResults := make([]*QuizResult, len(results))
	for i, result := range results {
		quizResults[i] = result.(*QuizResult)
	}

	// Pool completion order is nondeterministic; fix the output order.
	sort.Slice(quizResults, func(i, j int) bool {
		return quizResults[i].Path < quizResults[j].Path
	})
	return quizResults
}

// ProcessDir generates quizzes for every supported document in a directory
func (b *BatchProcessor) ProcessDir(ctx context.Context, dir string, baseSeed int64) ([]*QuizResult, error) {
	paths, err := ListDocuments(dir)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return b.ProcessPaths(ctx, paths, baseSeed), nil
}

// ListDocuments returns the supported document paths in dir, sorted
func ListDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if documentExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// DeriveSeed combines the run's base seed with a document name so every
// document gets an independent, stable RNG stream.
func DeriveSeed(base int64, name string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	return base ^ int64(h.Sum64())
}
