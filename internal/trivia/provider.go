// Package trivia supplies questions for new rounds.
package trivia

import (
	"context"
	"fmt"

	"github.com/trebekbot/trebekbot/internal/models"
	"github.com/trebekbot/trebekbot/pkg/errors"
	"github.com/trebekbot/trebekbot/pkg/logger"
)

// Provider returns one random question per call. The prompt may be empty,
// in which case callers should ask again.
type Provider interface {
	RandomQuestion(ctx context.Context) (*models.Question, error)
}

// Fetch asks p for a question until one has a prompt, giving up after
// maxAttempts calls. Transport errors count as attempts.
func Fetch(ctx context.Context, p Provider, maxAttempts int) (*models.Question, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		question, err := p.RandomQuestion(ctx)
		if err != nil {
			lastErr = err
			logger.Warn("Trivia provider failed", "attempt", attempt, "error", err)
			continue
		}
		if question.HasPrompt() {
			return question, nil
		}
		logger.Debug("Trivia provider returned empty prompt", "attempt", attempt)
	}

	return nil, errors.Wrap(lastErr, errors.ErrCodeProviderExhausted,
		fmt.Sprintf("no usable question after %d attempts", maxAttempts))
}
