package models

import "strings"

// DefaultQuestionValue applies when the provider omits a point value.
const DefaultQuestionValue = 100

// Question is the clue a channel is currently playing. It is stored as JSON
// under the channel's round key while active.
type Question struct {
	ID       int64  `json:"id"`
	Category string `json:"category"`
	Prompt   string `json:"question"`
	Answer   string `json:"answer"`
	Value    int64  `json:"value"`
}

// HasPrompt reports whether the provider returned a usable clue.
func (q *Question) HasPrompt() bool {
	return q != nil && strings.TrimSpace(q.Prompt) != ""
}

// PointValue returns Value, or DefaultQuestionValue when it is unset.
func (q *Question) PointValue() int64 {
	if q.Value == 0 {
		return DefaultQuestionValue
	}
	return q.Value
}
