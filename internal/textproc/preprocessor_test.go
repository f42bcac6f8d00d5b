package textproc

import (
	"reflect"
	"testing"
)

func TestPreprocessor_Process_BasicSentences(t *testing.T) {
	pre := NewPreprocessor("english", nil, nil)

	text := "Machine learning is a subset of artificial intelligence. Supervised learning uses labeled data. Unsupervised learning finds patterns."
	processed := pre.Process(text)

	if len(processed.Sentences) != 3 {
		t.Fatalf("Expected 3 sentences, got %d: %v", len(processed.Sentences), processed.Sentences)
	}
	if len(processed.Tokens) != len(processed.Sentences) {
		t.Fatalf("Sentence/token list length mismatch: %d vs %d", len(processed.Sentences), len(processed.Tokens))
	}

	want := []string{"machine", "learning", "subset", "artificial", "intelligence"}
	if !reflect.DeepEqual(processed.Tokens[0], want) {
		t.Errorf("Expected tokens %v, got %v", want, processed.Tokens[0])
	}
}

func TestPreprocessor_Process_DropsStopwordsAndNonAlpha(t *testing.T) {
	pre := NewPreprocessor("english", nil, nil)

	processed := pre.Process("The model was trained on 500 examples in 2020.")

	if len(processed.Tokens) != 1 {
		t.Fatalf("Expected 1 token list, got %d", len(processed.Tokens))
	}
	for _, token := range processed.Tokens[0] {
		if token == "the" || token == "was" || token == "on" || token == "in" {
			t.Errorf("Stopword %q survived filtering", token)
		}
		if token == "500" || token == "2020" {
			t.Errorf("Numeric token %q survived alphabetic filter", token)
		}
	}
}

func TestPreprocessor_Process_EmptyInput(t *testing.T) {
	pre := NewPreprocessor("english", nil, nil)

	for _, text := range []string{"", "   ", "\n\n\t"} {
		processed := pre.Process(text)
		if len(processed.Sentences) != 0 {
			t.Errorf("Expected no sentences for %q, got %v", text, processed.Sentences)
		}
	}
}

func TestPreprocessor_Process_TerminatorVariants(t *testing.T) {
	pre := NewPreprocessor("english", nil, nil)

	processed := pre.Process("Does it work? It works! Great.")

	want := []string{"Does it work?", "It works!", "Great."}
	if !reflect.DeepEqual(processed.Sentences, want) {
		t.Errorf("Expected sentences %v, got %v", want, processed.Sentences)
	}
}

func TestPreprocessor_Process_UnknownLanguageKeepsEverything(t *testing.T) {
	pre := NewPreprocessor("klingon", nil, nil)

	processed := pre.Process("the cat sat.")
	want := []string{"the", "cat", "sat"}
	if !reflect.DeepEqual(processed.Tokens[0], want) {
		t.Errorf("Expected unknown-language tokens %v, got %v", want, processed.Tokens[0])
	}
}

func TestPreprocessor_POSTag_Fallback(t *testing.T) {
	pre := NewPreprocessor("english", nil, nil)

	tagged := pre.POSTag([]string{"machine", "learning"})
	if len(tagged) != 2 {
		t.Fatalf("Expected 2 tagged tokens, got %d", len(tagged))
	}
	for _, tt := range tagged {
		if tt.Tag != "NN" {
			t.Errorf("Expected fallback tag NN for %q, got %q", tt.Token, tt.Tag)
		}
	}
}

type fixedTagger struct{}

func (fixedTagger) Tag(tokens []string) []TaggedToken {
	tagged := make([]TaggedToken, len(tokens))
	for i, tok := range tokens {
		tagged[i] = TaggedToken{Token: tok, Tag: "VB"}
	}
	return tagged
}

func TestPreprocessor_POSTag_UsesConfiguredTagger(t *testing.T) {
	pre := NewPreprocessor("english", nil, fixedTagger{})

	tagged := pre.POSTag([]string{"run"})
	if tagged[0].Tag != "VB" {
		t.Errorf("Expected configured tagger output VB, got %q", tagged[0].Tag)
	}
}

func TestPreprocessor_NamedEntities_DefaultEmpty(t *testing.T) {
	pre := NewPreprocessor("english", nil, nil)

	if got := pre.NamedEntities("Alan Turing worked at Bletchley Park."); len(got) != 0 {
		t.Errorf("Expected no entities without a recognizer, got %v", got)
	}
}
