package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Loping1234/NLP/internal/model"
	"github.com/Loping1234/NLP/internal/pipeline"
)

var (
	numMCQ         int
	numTrueFalse   int
	numFillBlank   int
	numShortAnswer int
	maxTerms       int
	maxOptions     int
	seed           int64
	outPath        string
	outFormat      string
	noAnswers      bool
	useEntities    bool
	noCache        bool
	lexProvider    string
	lexPath        string
	lexModel       string
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <file>",
	Short: "Generate a quiz from a document",
	Long: `Generate builds a quiz from a plain-text, Markdown or HTML document:
- Normalize text into sentences and tokens
- Score unigram/bigram terms with sentence-level TF-IDF
- Extract top concepts with supporting and definition sentences
- Synthesize mcq, true/false, fill-in-blank and short-answer questions

Example:
  quizgen generate notes.txt
  quizgen generate chapter.html --mcq 3 --tf 2 --out quiz.txt --format text
  quizgen generate notes.txt --seed 7 --lexicon static --lexicon-path synonyms.yaml
  quizgen generate notes.txt --lexicon openai --lexicon-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	// Question counts
	generateCmd.Flags().IntVar(&numMCQ, "mcq", 5, "number of multiple-choice questions")
	generateCmd.Flags().IntVar(&numTrueFalse, "tf", 5, "number of true/false questions")
	generateCmd.Flags().IntVar(&numFillBlank, "fill", 5, "number of fill-in-blank questions")
	generateCmd.Flags().IntVar(&numShortAnswer, "short", 3, "number of short-answer questions")

	// Synthesis knobs
	generateCmd.Flags().IntVar(&maxTerms, "max-terms", 50, "maximum concepts to extract")
	generateCmd.Flags().IntVar(&maxOptions, "max-options", 4, "options per multiple-choice question")
	generateCmd.Flags().Int64Var(&seed, "seed", 42, "random seed (same document + seed = same quiz)")
	generateCmd.Flags().BoolVar(&useEntities, "entities", false, "enable the heuristic named-entity recognizer")

	// Output flags
	generateCmd.Flags().StringVar(&outPath, "out", "quiz.json", "output path")
	generateCmd.Flags().StringVar(&outFormat, "format", "json", "output format (json, text)")
	generateCmd.Flags().BoolVar(&noAnswers, "no-answers", false, "omit answers and explanations from text output")

	// Lexicon flags
	generateCmd.Flags().StringVar(&lexProvider, "lexicon", "", "synonym lookup provider (static, openai; empty disables)")
	generateCmd.Flags().StringVar(&lexPath, "lexicon-path", "", "YAML synonym table for the static provider")
	generateCmd.Flags().StringVar(&lexModel, "lexicon-model", "gpt-4o-mini", "model name for the openai provider")
	generateCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable lexicon lookup cache")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	file := args[0]

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	p := pipeline.New(cfg, log)

	quiz, err := p.GenerateFile(context.Background(), file, cfg.Quiz.RandomSeed)
	if err != nil {
		return fmt.Errorf("generate failed: %w", err)
	}

	renderer := pipeline.NewRenderer(cfg.Quiz.IncludeAnswers)
	switch cfg.Quiz.OutputFormat {
	case "json":
		if err := renderer.RenderJSON(quiz, outPath); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
	case "text":
		if err := renderer.RenderText(quiz, outPath); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
	default:
		return fmt.Errorf("unknown output format: %s", cfg.Quiz.OutputFormat)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Wrote %s\n", outPath)
	}
	renderer.RenderSummary(quiz)
	return nil
}

// buildConfig applies generate flags over the defaults
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Quiz.NumMCQ = numMCQ
	cfg.Quiz.NumTrueFalse = numTrueFalse
	cfg.Quiz.NumFillBlank = numFillBlank
	cfg.Quiz.NumShortAnswer = numShortAnswer
	cfg.Quiz.MaxTerms = maxTerms
	cfg.Quiz.MaxOptionsPerMCQ = maxOptions
	cfg.Quiz.RandomSeed = seed
	cfg.Quiz.IncludeAnswers = !noAnswers
	cfg.Quiz.EntityHeuristic = useEntities
	cfg.Quiz.OutputFormat = outFormat
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose

	cfg.Lexicon.Provider = lexProvider
	switch lexProvider {
	case "static":
		if lexPath == "" {
			return nil, fmt.Errorf("--lexicon static requires --lexicon-path")
		}
		cfg.Lexicon.Path = lexPath
	case "openai":
		cfg.Lexicon.Model = lexModel
		cfg.Lexicon.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.Lexicon.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
		if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
			cfg.Lexicon.BaseURL = baseURL
		}
	}

	return cfg, nil
}
