package handlers

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/trebekbot/trebekbot/internal/middleware"
	"github.com/trebekbot/trebekbot/internal/security"
	"github.com/trebekbot/trebekbot/internal/slack"
	"github.com/trebekbot/trebekbot/pkg/errors"
	"github.com/trebekbot/trebekbot/pkg/logger"
)

const (
	invalidTokenText = "Invalid token"
	providerDownText = "Sorry, I couldn't find a question to ask right now. Try again in a moment."
	slowDownText     = "Whoa there. Let's give everyone else a chance to play. Try again in a minute."
	unreadableText   = "Sorry, I couldn't read that message."
)

var (
	jeopardyMeRe = regexp.MustCompile(`(?i)^jeopardy me`)
	myScoreRe    = regexp.MustCompile(`(?i)my score$`)
	helpRe       = regexp.MustCompile(`(?i)^help$`)
)

// Game is the round controller as seen by the webhook.
type Game interface {
	StartRound(ctx context.Context, channelID string) (string, error)
	SubmitAnswer(ctx context.Context, channelID, userID, displayName, submission string) (string, error)
	ScoreReply(ctx context.Context, userID, displayName string) (string, error)
	HelpReply() string
}

// OutgoingWebhook is the form Slack posts for every message that starts
// with the trigger word.
type OutgoingWebhook struct {
	Token       string `form:"token"`
	TeamID      string `form:"team_id"`
	ChannelID   string `form:"channel_id"`
	ChannelName string `form:"channel_name"`
	UserID      string `form:"user_id"`
	UserName    string `form:"user_name"`
	Text        string `form:"text"`
	TriggerWord string `form:"trigger_word"`
}

// Command returns the message text without the trigger word.
func (w OutgoingWebhook) Command() string {
	text := w.Text
	if w.TriggerWord != "" {
		text = strings.Replace(text, w.TriggerWord, "", 1)
	}
	return security.SanitizeString(text)
}

type WebhookHandler struct {
	game      Game
	token     string
	responder slack.Responder
}

func NewWebhookHandler(game Game, token string, responder slack.Responder) *WebhookHandler {
	return &WebhookHandler{
		game:      game,
		token:     token,
		responder: responder,
	}
}

// Authenticate stops requests whose token does not match before anything is
// charged to the user named in the form. Failed attempts are charged to the
// client IP instead, and an IP over its budget gets 429.
func (h *WebhookHandler) Authenticate(rl *middleware.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if security.ValidWebhookToken(c.PostForm("token"), h.token) {
			c.Next()
			return
		}

		ip := c.ClientIP()
		logger.Warn("Rejected webhook with invalid token",
			"ip", ip,
			"team_id", c.PostForm("team_id"),
			"channel_id", c.PostForm("channel_id"),
			"error", errors.New(errors.ErrCodeUnauthorized, "webhook token mismatch"),
		)
		if rl != nil && !rl.AllowIP(ip) {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.String(http.StatusOK, invalidTokenText)
		c.Abort()
	}
}

// HandleWebhook answers Slack synchronously; the reply body is posted to the
// channel. It runs behind Authenticate.
func (h *WebhookHandler) HandleWebhook(c *gin.Context) {
	var req OutgoingWebhook
	if err := c.ShouldBind(&req); err != nil {
		logger.Warn("Malformed webhook form", "error", err)
		c.JSON(http.StatusOK, h.responder.Reply(unreadableText))
		return
	}

	command := req.Command()
	ctx := c.Request.Context()
	var (
		text string
		err  error
	)
	switch {
	case jeopardyMeRe.MatchString(command):
		text, err = h.game.StartRound(ctx, req.ChannelID)
	case myScoreRe.MatchString(command):
		text, err = h.game.ScoreReply(ctx, req.UserID, req.UserName)
	case helpRe.MatchString(command):
		text = h.game.HelpReply()
	default:
		text, err = h.game.SubmitAnswer(ctx, req.ChannelID, req.UserID, req.UserName, command)
	}

	if err != nil {
		if errors.HasCode(err, errors.ErrCodeProviderExhausted) {
			logger.Warn("No question available", "channel_id", req.ChannelID, "error", err)
			c.JSON(http.StatusOK, h.responder.Reply(providerDownText))
			return
		}
		logger.Error("Failed to handle webhook",
			"channel_id", req.ChannelID,
			"user_id", req.UserID,
			"command", command,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, h.responder.Reply(text))
}

// RateLimited replies in-channel instead of failing the webhook.
func (h *WebhookHandler) RateLimited(c *gin.Context) {
	c.JSON(http.StatusOK, h.responder.Reply(slowDownText))
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

func Health(store Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Ping(c.Request.Context()); err != nil {
			logger.Warn("Health check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// NewRouter wires the webhook and health routes. A nil limiter disables rate
// limiting.
func NewRouter(h *WebhookHandler, store Pinger, limiter *middleware.RateLimiter) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery(), middleware.RequestLogger())

	webhook := []gin.HandlerFunc{h.Authenticate(limiter)}
	if limiter != nil {
		webhook = append(webhook, middleware.RateLimit(limiter, h.RateLimited))
	}
	webhook = append(webhook, h.HandleWebhook)
	router.POST("/", webhook...)
	router.GET("/health", Health(store))

	return router
}
