// Package normalize canonicalizes correct answers and user submissions so
// they can be compared by the similarity scorer.
package normalize

import (
	"regexp"
	"strings"
)

// Role selects which prefix rules apply.
type Role int

const (
	// Answer is the stored correct answer from the trivia provider.
	Answer Role = iota
	// Submission is the free text a contestant typed.
	Submission
)

var (
	punctuationRe = regexp.MustCompile(`[^\w\s]`)

	answerArticleRe = regexp.MustCompile(`(?i)^(the|a|an) `)

	interrogativeRe      = regexp.MustCompile(`(?i)^(what|whats|where|wheres|who|whos) `)
	copulaRe             = regexp.MustCompile(`(?i)^(is|are|was|were) `)
	submissionArticleRe  = regexp.MustCompile(`(?i)^(the|a) `)
	trailingQuestionMark = regexp.MustCompile(`\?+$`)
)

// StripPunctuation drops every rune that is neither a word character nor
// whitespace.
func StripPunctuation(s string) string {
	return punctuationRe.ReplaceAllString(s, "")
}

// ForComparison returns raw in the canonical form used for fuzzy matching.
// Each prefix rule is anchored at the start and applied at most once, in the
// order interrogative, copula, article.
func ForComparison(raw string, role Role) string {
	s := StripPunctuation(raw)

	switch role {
	case Answer:
		s = answerArticleRe.ReplaceAllString(s, "")
	case Submission:
		s = interrogativeRe.ReplaceAllString(s, "")
		s = copulaRe.ReplaceAllString(s, "")
		s = submissionArticleRe.ReplaceAllString(s, "")
		s = trailingQuestionMark.ReplaceAllString(s, "")
	}

	return strings.ToLower(strings.TrimSpace(s))
}

// HasInterrogativePrefix reports whether s opens with one of the accepted
// question words followed by a space.
func HasInterrogativePrefix(s string) bool {
	return interrogativeRe.MatchString(s)
}
