package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/trebekbot/trebekbot/pkg/errors"
	"github.com/trebekbot/trebekbot/pkg/logger"
)

// RateLimiter is a fixed-window, in-memory limiter keyed by Slack user ID
// and by client IP. Authenticated traffic is charged per user; the per-IP
// budget is meant for requests that fail authentication.
type RateLimiter struct {
	userLimits map[string]*window
	ipLimits   map[string]*window
	mu         sync.Mutex

	userMaxRequests int
	ipMaxRequests   int
	window          time.Duration

	now  func() time.Time
	stop chan struct{}
	once sync.Once
}

type window struct {
	requests  int
	resetTime time.Time
}

// NewRateLimiter starts a background sweeper; call Stop to end it.
func NewRateLimiter(userMaxRequests, ipMaxRequests int, period time.Duration) *RateLimiter {
	rl := &RateLimiter{
		userLimits:      make(map[string]*window),
		ipLimits:        make(map[string]*window),
		userMaxRequests: userMaxRequests,
		ipMaxRequests:   ipMaxRequests,
		window:          period,
		now:             time.Now,
		stop:            make(chan struct{}),
	}

	go rl.cleanup(5 * time.Minute)

	return rl
}

func (rl *RateLimiter) AllowUser(userID string) bool {
	return rl.allow(rl.userLimits, userID, rl.userMaxRequests)
}

func (rl *RateLimiter) AllowIP(ip string) bool {
	return rl.allow(rl.ipLimits, ip, rl.ipMaxRequests)
}

// A non-positive max disables the check.
func (rl *RateLimiter) allow(limits map[string]*window, key string, max int) bool {
	if max <= 0 || key == "" {
		return true
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	limit, exists := limits[key]
	if !exists || !now.Before(limit.resetTime) {
		limits[key] = &window{requests: 1, resetTime: now.Add(rl.window)}
		return true
	}

	if limit.requests >= max {
		return false
	}
	limit.requests++
	return true
}

func (rl *RateLimiter) UserRemaining(userID string) int {
	return rl.remaining(rl.userLimits, userID, rl.userMaxRequests)
}

func (rl *RateLimiter) remaining(limits map[string]*window, key string, max int) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limit, exists := limits[key]
	if !exists || !rl.now().Before(limit.resetTime) {
		return max
	}
	if left := max - limit.requests; left > 0 {
		return left
	}
	return 0
}

func (rl *RateLimiter) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for _, limits := range []map[string]*window{rl.userLimits, rl.ipLimits} {
		for key, limit := range limits {
			if !now.Before(limit.resetTime) {
				delete(limits, key)
			}
		}
	}
}

func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// RateLimitRemainingHeader reports the caller's remaining budget in the
// current window.
const RateLimitRemainingHeader = "X-RateLimit-Remaining"

// RateLimit rejects requests over the per-user budget. The user is read from
// the user_id form field, so it must be mounted after the request has been
// authenticated. onLimited writes the rejection and must not call Next.
func RateLimit(rl *RateLimiter, onLimited gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.PostForm("user_id")

		if !rl.AllowUser(userID) {
			logger.Warn("Rate limit exceeded",
				"user_id", userID,
				"error", errors.New(errors.ErrCodeRateLimitExceeded, "per-user webhook budget spent"),
			)
			onLimited(c)
			c.Abort()
			return
		}
		c.Header(RateLimitRemainingHeader, strconv.Itoa(rl.UserRemaining(userID)))
		c.Next()
	}
}
