package judge

import (
	"testing"

	"github.com/trebekbot/trebekbot/pkg/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestJudge(t *testing.T) {
	tests := []struct {
		name         string
		correct      string
		submission   string
		wantQuestion bool
		wantCorrect  bool
	}{
		{"Question and correct", "a dog", "what is a dog?", true, true},
		{"Correct but not a question", "a dog", "dog", false, true},
		{"Question but wrong", "a dog", "what is a cat?", true, false},
		{"Neither", "a dog", "cat", false, false},
		{"Contraction counts as question", "dirt", "what's dirt", true, true},
		{"Punctuation inside interrogative", "Waldo", "Where's Waldo?", true, true},
		{"Uppercase interrogative", "The Beatles", "WHO ARE THE BEATLES", true, true},
		{"HTML in stored answer", "<i>Moby-Dick</i>", "what is moby dick", true, true},
		{"Empty submission", "Paris", "", false, false},
		{"Bare interrogative", "Paris", "what", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Judge(tt.correct, tt.submission)
			if got.IsQuestionFormat != tt.wantQuestion {
				t.Errorf("IsQuestionFormat = %v, want %v", got.IsQuestionFormat, tt.wantQuestion)
			}
			if got.IsCorrect != tt.wantCorrect {
				t.Errorf("IsCorrect = %v, want %v (similarity %v, %q vs %q)",
					got.IsCorrect, tt.wantCorrect, got.Similarity, got.NormalizedAnswer, got.NormalizedSubmission)
			}
		})
	}
}

func TestJudge_Diagnostics(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger.Set(zap.New(core))
	defer logger.Set(zap.NewNop())

	got := Judge("The Dog", "What is a dog?")

	if got.NormalizedAnswer != "dog" || got.NormalizedSubmission != "dog" {
		t.Errorf("normalized = %q / %q, want dog / dog", got.NormalizedAnswer, got.NormalizedSubmission)
	}
	if got.Similarity != 1 {
		t.Errorf("Similarity = %v, want 1", got.Similarity)
	}

	entries := logs.FilterMessage("Judged response").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d judge entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["correct_answer"] != "dog" || fields["user_answer"] != "dog" || fields["similarity"] != 1.0 {
		t.Errorf("logged fields = %v", fields)
	}
}

func TestIsQuestionFormat_UsesRawText(t *testing.T) {
	// Normalization removes the interrogative, so the format check must run
	// on the original text.
	if !IsQuestionFormat("who is Napoleon?") {
		t.Error("IsQuestionFormat(who is Napoleon?) = false, want true")
	}
	if IsQuestionFormat("Napoleon") {
		t.Error("IsQuestionFormat(Napoleon) = true, want false")
	}
}
