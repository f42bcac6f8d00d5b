package score

import (
	"math"
	"sort"
)

// TermScorer computes per-term relevance over sentence-level documents.
// Scores are mean TF-IDF across all documents, so a term concentrated in a
// few sentences outscores one spread across every sentence.
type TermScorer struct{}

// NewTermScorer creates a new term scorer
func NewTermScorer() *TermScorer {
	return &TermScorer{}
}

// WithBigrams appends adjacent-pair bigram tokens (space-joined) to a copy
// of the token list. Document length downstream includes these bigrams.
func WithBigrams(tokens []string) []string {
	doc := make([]string, 0, 2*len(tokens))
	doc = append(doc, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		doc = append(doc, tokens[i]+" "+tokens[i+1])
	}
	return doc
}

// Score returns the mean TF-IDF per term across documents.
//
//	tf  = occurrences(term) / len(document)
//	idf = 1 + ln((N+1)/(df+1))
//
// Contributions are summed over documents and divided by the total document
// count N, counting documents where the term is absent. Empty documents
// contribute nothing but still count toward N.
func (s *TermScorer) Score(documents [][]string) map[string]float64 {
	numDocs := len(documents)
	if numDocs == 0 {
		return map[string]float64{}
	}

	df := make(map[string]int)
	for _, doc := range documents {
		seen := make(map[string]struct{}, len(doc))
		for _, term := range doc {
			if _, ok := seen[term]; !ok {
				seen[term] = struct{}{}
				df[term]++
			}
		}
	}

	sums := make(map[string]float64)
	for _, doc := range documents {
		if len(doc) == 0 {
			continue
		}
		length := float64(len(doc))
		tf := make(map[string]float64, len(doc))
		for _, term := range doc {
			tf[term] += 1.0 / length
		}
		for term, tfVal := range tf {
			idf := 1.0 + math.Log(float64(numDocs+1)/float64(df[term]+1))
			sums[term] += tfVal * idf
		}
	}

	scores := make(map[string]float64, len(sums))
	for term, total := range sums {
		scores[term] = total / float64(numDocs)
	}
	return scores
}

// Ranked returns terms ordered by descending score. Ties break by term
// ascending: map iteration order is not reproducible, so the tie-break has
// to come from the data itself.
func Ranked(scores map[string]float64) []string {
	terms := make([]string, 0, len(scores))
	for term := range scores {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		si, sj := scores[terms[i]], scores[terms[j]]
		if si != sj {
			return si > sj
		}
		return terms[i] < terms[j]
	})
	return terms
}
