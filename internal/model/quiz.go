package model

import "time"

// Quiz is the envelope for one generation run
type Quiz struct {
	Source      string     `json:"source,omitempty"`   // Document name or path the quiz was built from
	GeneratedAt time.Time  `json:"generated_at"`       // When the run happened
	Seed        int64      `json:"seed"`               // RNG seed used for this run
	Counts      TypeCounts `json:"counts"`             // Per-type question totals
	Questions   []Question `json:"questions"`          // Ordered question records
}

// TypeCounts holds per-type question totals
type TypeCounts struct {
	MCQ         int `json:"mcq"`
	TrueFalse   int `json:"true_false"`
	FillBlank   int `json:"fill_blank"`
	ShortAnswer int `json:"short_answer"`
}

// Total returns the overall question count
func (c TypeCounts) Total() int {
	return c.MCQ + c.TrueFalse + c.FillBlank + c.ShortAnswer
}

// CountByType tallies questions per type
func CountByType(questions []Question) TypeCounts {
	var counts TypeCounts
	for _, q := range questions {
		switch q.Type {
		case TypeMCQ:
			counts.MCQ++
		case TypeTrueFalse:
			counts.TrueFalse++
		case TypeFillBlank:
			counts.FillBlank++
		case TypeShortAnswer:
			counts.ShortAnswer++
		}
	}
	return counts
}
