package lexicon

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/Loping1234/NLP/internal/cache"
)

// OpenAIConfig configures the LLM-backed lexicon
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration

	// RequestsPerSecond and Burst bound outbound API calls
	RequestsPerSecond float64
	Burst             int
}

// OpenAILookup implements Lookup against the OpenAI chat API. Lookups are
// rate limited and cached by term; any API failure degrades to an empty
// result, never to an error. Results are not deterministic across cache
// misses, so this provider stays off in reproducibility-sensitive runs.
type OpenAILookup struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	limiter *rate.Limiter
	cache   cache.Cache
	log     *logrus.Logger
}

// NewOpenAILookup creates an LLM-backed lexicon. A nil store disables
// caching.
func NewOpenAILookup(cfg OpenAIConfig, store cache.Cache, log *logrus.Logger) (*OpenAILookup, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai lexicon requires an API key")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 2.0
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 5
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &OpenAILookup{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   model,
		timeout: timeout,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		cache:   store,
		log:     log,
	}, nil
}

// Synonyms asks the model for alternate surface forms of a term
func (l *OpenAILookup) Synonyms(ctx context.Context, term string) []string {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}

	key := cache.TermKey("openai:"+l.model, strings.ToLower(term))
	if l.cache != nil {
		if data, found := l.cache.Get(key); found {
			var cached []string
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached
			}
		}
	}

	if err := l.limiter.Wait(ctx); err != nil {
		l.log.WithError(err).Debug("lexicon rate limiter interrupted")
		return nil
	}

	synonyms, err := l.fetch(ctx, term)
	if err != nil {
		l.log.WithError(err).WithField("term", term).Debug("lexicon lookup failed")
		return nil
	}

	if l.cache != nil {
		if data, err := json.Marshal(synonyms); err == nil {
			_ = l.cache.Set(key, data, 0)
		}
	}
	return synonyms
}

func (l *OpenAILookup) fetch(ctx context.Context, term string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: l.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a thesaurus. Reply with a comma-separated list of up to 8 synonyms or closely related surface forms for the given term. Reply with the bare list only.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: term,
			},
		},
		MaxTokens:   100,
		Temperature: 0,
	}

	resp, err := l.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty completion response")
	}

	return parseSynonymList(resp.Choices[0].Message.Content), nil
}

// parseSynonymList splits a comma-separated model reply into clean forms
func parseSynonymList(reply string) []string {
	var synonyms []string
	for _, part := range strings.Split(reply, ",") {
		form := strings.Trim(strings.TrimSpace(part), `."'`)
		if form != "" {
			synonyms = append(synonyms, form)
		}
	}
	return synonyms
}
