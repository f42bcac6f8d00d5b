package assess

import (
	"math"

	"github.com/Loping1234/NLP/internal/model"
)

// maxSentenceLength clips the length contribution so very long sentences
// cannot dominate the blend.
const maxSentenceLength = 40.0

// Assess maps a concept's importance score and the word count of the
// question's source sentence to a difficulty tier. Pure and deterministic:
// rare terms (low importance) and long sentences both push toward hard.
func Assess(importanceScore float64, sentenceLength int) model.Difficulty {
	length := math.Min(float64(sentenceLength), maxSentenceLength)
	blended := (1.0-importanceScore)*0.6 + (length/maxSentenceLength)*0.4

	switch {
	case blended < 0.33:
		return model.DifficultyEasy
	case blended < 0.66:
		return model.DifficultyMedium
	default:
		return model.DifficultyHard
	}
}
