package model

// Concept represents a scored candidate term together with the evidence
// the synthesizer needs: supporting sentences, definition-like sentences,
// and corpus-wide entities and numeric literals.
//
// Concepts are value objects: built once by the extractor, read-only after.
type Concept struct {
	Term                 string   `json:"term"`                            // Unigram or bigram, space-joined, lowercase
	SupportingSentences  []string `json:"supporting_sentences"`            // Raw sentences containing the term, source order, capped at 5
	DefinitionCandidates []string `json:"definition_candidates,omitempty"` // Supporting sentences matching definitional patterns
	NamedEntities        []string `json:"named_entities,omitempty"`        // Corpus-wide entity strings (shared by all concepts)
	NumericalFacts       []string `json:"numerical_facts,omitempty"`       // Corpus-wide numeric literals, first-appearance order
	ImportanceScore      float64  `json:"importance_score"`                // Mean TF-IDF across sentence-documents
}
