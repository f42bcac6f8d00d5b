package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Loping1234/NLP/internal/model"
)

// Renderer writes quizzes as JSON or plain text
type Renderer struct {
	includeAnswers bool
}

// NewRenderer creates a renderer. includeAnswers controls whether the text
// rendering prints answer and explanation lines.
func NewRenderer(includeAnswers bool) *Renderer {
	return &Renderer{includeAnswers: includeAnswers}
}

// JSON renders the quiz as indented JSON
func (r *Renderer) JSON(quiz *model.Quiz) ([]byte, error) {
	data, err := json.MarshalIndent(quiz, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal quiz: %w", err)
	}
	return append(data, '\n'), nil
}

// RenderJSON writes the JSON rendering to a file
func (r *Renderer) RenderJSON(quiz *model.Quiz, path string) error {
	data, err := r.JSON(quiz)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write quiz JSON: %w", err)
	}
	return nil
}

// Text renders the quiz in the classic printable layout:
//
//	Q1 [mcq | easy]: What is 'machine learning'?
//	  a) ...
//	Answer: ...
func (r *Renderer) Text(quiz *model.Quiz) string {
	var lines []string
	for i, q := range quiz.Questions {
		lines = append(lines, fmt.Sprintf("Q%d [%s | %s]: %s", i+1, q.Type, q.Difficulty, q.Text))
		for j, option := range q.Options {
			lines = append(lines, fmt.Sprintf("  %c) %s", 'a'+j, option))
		}
		if r.includeAnswers {
			lines = append(lines, fmt.Sprintf("Answer: %s", q.CorrectAnswer))
			if q.Explanation != "" {
				lines = append(lines, fmt.Sprintf("Explanation: %s", q.Explanation))
			}
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// RenderText writes the text rendering to a file
func (r *Renderer) RenderText(quiz *model.Quiz, path string) error {
	if err := os.WriteFile(path, []byte(r.Text(quiz)), 0644); err != nil {
		return fmt.Errorf("write quiz text: %w", err)
	}
	return nil
}

// RenderSummary prints a one-screen run summary to stderr
func (r *Renderer) RenderSummary(quiz *model.Quiz) {
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Source:     %s\n", quiz.Source)
	fmt.Fprintf(os.Stderr, "  Seed:       %d\n", quiz.Seed)
	fmt.Fprintf(os.Stderr, "  Questions:  %d (mcq %d, true/false %d, fill %d, short %d)\n",
		quiz.Counts.Total(), quiz.Counts.MCQ, quiz.Counts.TrueFalse, quiz.Counts.FillBlank, quiz.Counts.ShortAnswer)
	fmt.Fprintf(os.Stderr, "\n")
}
