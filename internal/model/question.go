package model

// QuestionType identifies one of the four supported question forms
type QuestionType string

const (
	TypeMCQ         QuestionType = "mcq"
	TypeTrueFalse   QuestionType = "true_false"
	TypeFillBlank   QuestionType = "fill_blank"
	TypeShortAnswer QuestionType = "short_answer"
)

// Difficulty is the three-level difficulty tier assigned to a question
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Question is a single generated quiz item. Built once by the synthesizer
// and never mutated afterwards.
type Question struct {
	Type            QuestionType `json:"type"`
	Text            string       `json:"text"`                       // Prompt or blanked/modified statement
	Options         []string     `json:"options,omitempty"`          // Present only for mcq and true_false
	CorrectAnswer   string       `json:"correct_answer"`
	Explanation     string       `json:"explanation,omitempty"`      // Source sentence the question was derived from
	Difficulty      Difficulty   `json:"difficulty"`
	SourceReference string       `json:"source_reference,omitempty"`
}
