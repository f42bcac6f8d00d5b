package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Loping1234/NLP/internal/pipeline"
	"github.com/Loping1234/NLP/internal/worker"
)

var (
	concurrency int
	outputDir   string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Generate quizzes for every document in a directory",
	Long: `Batch processes a directory of documents concurrently:
- Pick up .txt, .md, .html and .htm files
- Generate quizzes in parallel with a configurable worker count
- Derive a per-document seed from the base seed, so each document's quiz
  is reproducible independently of the others

Example:
  quizgen batch ./docs
  quizgen batch ./docs --concurrency 8 --output-dir ./quizzes
  quizgen batch ./docs --seed 7 --format text`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./quizzes", "output directory for quizzes")

	// Shared generation flags
	batchCmd.Flags().IntVar(&numMCQ, "mcq", 5, "number of multiple-choice questions per document")
	batchCmd.Flags().IntVar(&numTrueFalse, "tf", 5, "number of true/false questions per document")
	batchCmd.Flags().IntVar(&numFillBlank, "fill", 5, "number of fill-in-blank questions per document")
	batchCmd.Flags().IntVar(&numShortAnswer, "short", 3, "number of short-answer questions per document")
	batchCmd.Flags().IntVar(&maxTerms, "max-terms", 50, "maximum concepts to extract")
	batchCmd.Flags().IntVar(&maxOptions, "max-options", 4, "options per multiple-choice question")
	batchCmd.Flags().Int64Var(&seed, "seed", 42, "base random seed")
	batchCmd.Flags().BoolVar(&useEntities, "entities", false, "enable the heuristic named-entity recognizer")
	batchCmd.Flags().StringVar(&outFormat, "format", "json", "output format (json, text)")
	batchCmd.Flags().BoolVar(&noAnswers, "no-answers", false, "omit answers and explanations from text output")
	batchCmd.Flags().StringVar(&lexProvider, "lexicon", "", "synonym lookup provider (static, openai; empty disables)")
	batchCmd.Flags().StringVar(&lexPath, "lexicon-path", "", "YAML synonym table for the static provider")
	batchCmd.Flags().StringVar(&lexModel, "lexicon-model", "gpt-4o-mini", "model name for the openai provider")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable lexicon lookup cache")
}

func runBatch(cmd *cobra.Command, args []string) error {
	dir := args[0]

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.Workers = concurrency

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p := pipeline.New(cfg, log)
	processor := worker.NewBatchProcessor(p, cfg.Concurrency.Workers)

	fmt.Fprintf(os.Stderr, "⚙️  Processing %s with %d workers...\n", dir, cfg.Concurrency.Workers)

	results, err := processor.ProcessDir(context.Background(), dir, cfg.Quiz.RandomSeed)
	if err != nil {
		return fmt.Errorf("process directory: %w", err)
	}

	renderer := pipeline.NewRenderer(cfg.Quiz.IncludeAnswers)
	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Error)
			continue
		}

		name := strings.TrimSuffix(filepath.Base(result.Path), filepath.Ext(result.Path))
		var renderErr error
		var out string
		switch cfg.Quiz.OutputFormat {
		case "text":
			out = filepath.Join(outputDir, name+".txt")
			renderErr = renderer.RenderText(result.Quiz, out)
		default:
			out = filepath.Join(outputDir, name+".json")
			renderErr = renderer.RenderJSON(result.Quiz, out)
		}
		if renderErr != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, renderErr)
			continue
		}

		successCount++
		fmt.Fprintf(os.Stderr, "✓ %s (%d questions)\n", result.Path, result.Quiz.Counts.Total())
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d documents\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}
