// Package game runs the per-channel round state machine. A channel is idle
// until a question is started, and any answer attempt resolves the round and
// returns it to idle.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/trebekbot/trebekbot/internal/directory"
	"github.com/trebekbot/trebekbot/internal/judge"
	"github.com/trebekbot/trebekbot/internal/models"
	"github.com/trebekbot/trebekbot/internal/security"
	"github.com/trebekbot/trebekbot/internal/trivia"
	"github.com/trebekbot/trebekbot/pkg/logger"
)

// RoundStore holds the active question per channel.
type RoundStore interface {
	Active(ctx context.Context, channelID string) (*models.Question, error)
	SetActive(ctx context.Context, channelID string, question *models.Question) error
	ClearActive(ctx context.Context, channelID string) error
}

// ScoreLedger holds running scores per user.
type ScoreLedger interface {
	Get(ctx context.Context, userID string) (int64, error)
	ApplyDelta(ctx context.Context, userID string, delta int64) (int64, error)
}

type Options struct {
	// BotUsername is the trigger word shown in help and taunts.
	BotUsername string
	// MaxProviderAttempts bounds retries for questions without a prompt.
	MaxProviderAttempts int
	// Pick returns a uniform index in [0,n). Defaults to math/rand.
	Pick func(n int) int
}

type Controller struct {
	rounds   RoundStore
	scores   ScoreLedger
	provider trivia.Provider
	names    directory.Resolver
	opts     Options
	taunts   []string
}

func NewController(rounds RoundStore, scores ScoreLedger, provider trivia.Provider, names directory.Resolver, opts Options) *Controller {
	if opts.Pick == nil {
		opts.Pick = rand.Intn
	}
	if opts.MaxProviderAttempts < 1 {
		opts.MaxProviderAttempts = 1
	}
	if names == nil {
		names = directory.Passthrough{}
	}
	return &Controller{
		rounds:   rounds,
		scores:   scores,
		provider: provider,
		names:    names,
		opts:     opts,
		taunts:   taunts(opts.BotUsername),
	}
}

// StartRound activates a fresh question for the channel. A question that was
// still active is revealed before it is replaced.
func (c *Controller) StartRound(ctx context.Context, channelID string) (string, error) {
	question, err := trivia.Fetch(ctx, c.provider, c.opts.MaxProviderAttempts)
	if err != nil {
		return "", err
	}
	question.Value = question.PointValue()

	previous, err := c.rounds.Active(ctx, channelID)
	if err != nil {
		return "", err
	}

	var text strings.Builder
	if previous != nil {
		fmt.Fprintf(&text, "The answer is `%s`. Moving on… ", security.StripTags(previous.Answer))
	}
	fmt.Fprintf(&text, "The category is `%s` for $%d: `%s`", question.Category, question.Value, question.Prompt)

	logger.Info("Question activated",
		"channel_id", channelID,
		"id", question.ID,
		"category", question.Category,
		"question", question.Prompt,
		"answer", question.Answer,
		"value", question.Value,
	)

	if err := c.rounds.SetActive(ctx, channelID, question); err != nil {
		return "", err
	}
	return text.String(), nil
}

// SubmitAnswer judges a response against the channel's active question. Every
// judged response resolves the round, right or wrong.
func (c *Controller) SubmitAnswer(ctx context.Context, channelID, userID, displayName, submission string) (string, error) {
	current, err := c.rounds.Active(ctx, channelID)
	if err != nil {
		return "", err
	}
	if current == nil {
		return c.taunts[c.opts.Pick(len(c.taunts))], nil
	}

	verdict := judge.Judge(current.Answer, submission)
	value := current.PointValue()

	delta := -value
	if verdict.IsQuestionFormat && verdict.IsCorrect {
		delta = value
	}

	score, err := c.scores.ApplyDelta(ctx, userID, delta)
	if err != nil {
		return "", err
	}
	if err := c.rounds.ClearActive(ctx, channelID); err != nil {
		return "", err
	}

	logger.Info("Round resolved",
		"channel_id", channelID,
		"user_id", userID,
		"question_format", verdict.IsQuestionFormat,
		"correct", verdict.IsCorrect,
		"delta", delta,
		"score", score,
	)

	name := c.names.DisplayName(ctx, userID, displayName)
	switch {
	case verdict.IsQuestionFormat && verdict.IsCorrect:
		return fmt.Sprintf("That is the correct answer, %s. Your total score is %s.", name, FormatScore(score)), nil
	case verdict.IsCorrect:
		return fmt.Sprintf("That is correct, %s, but responses have to be in the form of a question. Your total score is %s.", name, FormatScore(score)), nil
	default:
		return fmt.Sprintf("Sorry, %s, the correct answer is `%s`. Your score is now %s.", name, security.StripTags(current.Answer), FormatScore(score)), nil
	}
}

func (c *Controller) ScoreReply(ctx context.Context, userID, displayName string) (string, error) {
	score, err := c.scores.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	name := c.names.DisplayName(ctx, userID, displayName)
	return fmt.Sprintf("%s, your score is %s.", name, FormatScore(score)), nil
}

func (c *Controller) HelpReply() string {
	bot := c.opts.BotUsername
	return strings.Join([]string{
		fmt.Sprintf("Type `%s jeopardy me` to start a new round of Slack Jeopardy. I will pick the category and price. Anyone in the channel can respond.", bot),
		fmt.Sprintf("Type `%s [what|where|who] [is|are] [answer]?` to respond to the active round. Remember, responses must be in the form of a question, e.g. `%s what is dirt?`.", bot, bot),
		fmt.Sprintf("Type `%s what is my score` to see your current score.", bot),
	}, "\n")
}

// FormatScore renders a score in dollars, with the sign before the symbol.
func FormatScore(score int64) string {
	if score >= 0 {
		return fmt.Sprintf("$%d", score)
	}
	return fmt.Sprintf("-$%d", uint64(-score))
}
