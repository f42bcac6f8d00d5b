package model

import "time"

// Config is the complete runtime configuration. Constructed once per run
// and passed by value/reference; nothing mutates it after construction.
type Config struct {
	Quiz        QuizConfig        `yaml:"quiz" mapstructure:"quiz"`
	Lexicon     LexiconConfig     `yaml:"lexicon" mapstructure:"lexicon"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit" mapstructure:"rate_limit"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// QuizConfig controls question selection and synthesis for a single run
type QuizConfig struct {
	NumMCQ         int `yaml:"num_mcq" mapstructure:"num_mcq"`
	NumTrueFalse   int `yaml:"num_true_false" mapstructure:"num_true_false"`
	NumFillBlank   int `yaml:"num_fill_blank" mapstructure:"num_fill_blank"`
	NumShortAnswer int `yaml:"num_short_answer" mapstructure:"num_short_answer"`

	// DifficultyDistribution is an advisory target (sums to roughly 1.0).
	// It is accepted and reported but not enforced by the generation logic.
	DifficultyDistribution map[string]float64 `yaml:"difficulty_distribution" mapstructure:"difficulty_distribution"`

	// TopicKeywords is accepted for forward compatibility; the current
	// selection logic does not consult it.
	TopicKeywords []string `yaml:"topic_keywords,omitempty" mapstructure:"topic_keywords"`

	IncludeAnswers   bool   `yaml:"include_answers" mapstructure:"include_answers"`
	MaxOptionsPerMCQ int    `yaml:"max_options_per_mcq" mapstructure:"max_options_per_mcq"`
	MaxTerms         int    `yaml:"max_terms" mapstructure:"max_terms"`
	Language         string `yaml:"language" mapstructure:"language"`

	// EntityHeuristic switches the capitalized-span entity recognizer on.
	// Off by default: with no recognizer the entity set is simply empty.
	EntityHeuristic bool `yaml:"entity_heuristic" mapstructure:"entity_heuristic"`

	OutputFormat string `yaml:"output_format" mapstructure:"output_format"` // json|text
	RandomSeed   int64  `yaml:"random_seed" mapstructure:"random_seed"`
}

// LexiconConfig selects the optional synonym lookup collaborator
type LexiconConfig struct {
	Provider string        `yaml:"provider" mapstructure:"provider"` // "", "static", "openai"
	Path     string        `yaml:"path,omitempty" mapstructure:"path"`
	APIKey   string        `yaml:"-" mapstructure:"-"`
	BaseURL  string        `yaml:"base_url,omitempty" mapstructure:"base_url"`
	Model    string        `yaml:"model,omitempty" mapstructure:"model"`
	Timeout  time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// CacheConfig controls the lexicon lookup cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// ConcurrencyConfig controls batch processing parallelism
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// RateLimitConfig bounds outbound lexicon API calls
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// OutputConfig controls CLI output behavior
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Quiz: QuizConfig{
			NumMCQ:         5,
			NumTrueFalse:   5,
			NumFillBlank:   5,
			NumShortAnswer: 3,
			DifficultyDistribution: map[string]float64{
				"easy":   0.5,
				"medium": 0.35,
				"hard":   0.15,
			},
			IncludeAnswers:   true,
			MaxOptionsPerMCQ: 4,
			MaxTerms:         50,
			Language:         "english",
			OutputFormat:     "json",
			RandomSeed:       42,
		},
		Lexicon: LexiconConfig{
			Provider: "",
			Model:    "gpt-4o-mini",
			Timeout:  30 * time.Second,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       ".quizgen-cache",
			MemoryTTL: 1 * time.Hour,
			DiskTTL:   7 * 24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 2.0,
			Burst:             5,
		},
		Output: OutputConfig{
			Verbose: false,
		},
	}
}
