// Package judge decides whether a contestant's response is phrased as a
// question and whether it matches the correct answer.
package judge

import (
	"github.com/trebekbot/trebekbot/internal/normalize"
	"github.com/trebekbot/trebekbot/internal/security"
	"github.com/trebekbot/trebekbot/internal/similarity"
	"github.com/trebekbot/trebekbot/pkg/logger"
)

// Threshold is the minimum similarity for a response to count as correct.
const Threshold = 0.5

type Verdict struct {
	IsQuestionFormat bool
	IsCorrect        bool

	NormalizedAnswer     string
	NormalizedSubmission string
	Similarity           float64
}

// IsQuestionFormat inspects the raw submission, not its normalized form, so
// the interrogative is still present.
func IsQuestionFormat(submission string) bool {
	return normalize.HasInterrogativePrefix(normalize.StripPunctuation(submission))
}

func Judge(correctAnswer, submission string) Verdict {
	answer := normalize.ForComparison(security.StripTags(correctAnswer), normalize.Answer)
	response := normalize.ForComparison(submission, normalize.Submission)
	score := similarity.White(answer, response)

	logger.Debug("Judged response",
		"correct_answer", answer,
		"user_answer", response,
		"similarity", score,
	)

	return Verdict{
		IsQuestionFormat:     IsQuestionFormat(submission),
		IsCorrect:            score >= Threshold,
		NormalizedAnswer:     answer,
		NormalizedSubmission: response,
		Similarity:           score,
	}
}
