package textproc

import (
	"regexp"
	"strings"
	"unicode"
)

// NormalizedText pairs every source sentence with its normalized tokens.
// Invariant: len(Sentences) == len(Tokens), both in source order. Order is
// semantically meaningful downstream (first-occurrence extraction).
type NormalizedText struct {
	Sentences []string
	Tokens    [][]string
}

// TaggedToken is a token with its part-of-speech tag
type TaggedToken struct {
	Token string
	Tag   string
}

// Tagger assigns part-of-speech tags to tokens. Optional capability: when
// no tagger is configured the preprocessor falls back to a generic noun tag.
type Tagger interface {
	Tag(tokens []string) []TaggedToken
}

// Preprocessor normalizes raw text into sentences and filtered tokens.
// Pure with respect to its input: the same text always yields the same
// NormalizedText for a given language/stopword configuration.
type Preprocessor struct {
	language  string
	stopwords map[string]struct{}
	entities  EntityRecognizer
	tagger    Tagger
}

var wordRe = regexp.MustCompile(`\w+`)

// NewPreprocessor creates a preprocessor for the given language. A nil
// entity recognizer or tagger selects the degraded fallback behavior.
func NewPreprocessor(language string, entities EntityRecognizer, tagger Tagger) *Preprocessor {
	if entities == nil {
		entities = NoopRecognizer{}
	}
	return &Preprocessor{
		language:  language,
		stopwords: stopwordSet(language),
		entities:  entities,
		tagger:    tagger,
	}
}

// Process splits text into sentences and tokenizes each one
func (p *Preprocessor) Process(text string) NormalizedText {
	sentences := splitSentences(text)
	tokens := make([][]string, len(sentences))
	for i, sentence := range sentences {
		tokens[i] = p.tokenize(sentence)
	}
	return NormalizedText{Sentences: sentences, Tokens: tokens}
}

// POSTag tags tokens, falling back to a generic noun tag without a tagger
func (p *Preprocessor) POSTag(tokens []string) []TaggedToken {
	if p.tagger != nil {
		return p.tagger.Tag(tokens)
	}
	tagged := make([]TaggedToken, len(tokens))
	for i, t := range tokens {
		tagged[i] = TaggedToken{Token: t, Tag: "NN"}
	}
	return tagged
}

// NamedEntities returns entity strings for the text, empty if no model
func (p *Preprocessor) NamedEntities(text string) []string {
	return p.entities.Recognize(text)
}

// tokenize lowercases word tokens and keeps alphabetic non-stopwords
func (p *Preprocessor) tokenize(sentence string) []string {
	var tokens []string
	for _, match := range wordRe.FindAllString(sentence, -1) {
		token := strings.ToLower(match)
		if !isAlpha(token) {
			continue
		}
		if _, stop := p.stopwords[token]; stop {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// splitSentences splits on whitespace following '.', '!' or '?'.
// Empty and whitespace-only segments are dropped.
func splitSentences(text string) []string {
	text = strings.ReplaceAll(text, "\n", " ")

	var sentences []string
	var current strings.Builder

	flush := func() {
		sentence := strings.TrimSpace(current.String())
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		current.Reset()
	}

	for i, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if i+1 >= len(text) || isSpaceByte(text[i+1]) {
				flush()
			}
		}
	}
	flush()

	return sentences
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r'
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
