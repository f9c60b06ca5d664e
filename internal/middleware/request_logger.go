package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/trebekbot/trebekbot/pkg/logger"
	"github.com/trebekbot/trebekbot/pkg/utils"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger logs one line per request after it completes. Slack may
// retry a webhook, so the caller's request ID is kept when present.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = utils.NewRequestID()
		}
		c.Header(RequestIDHeader, requestID)
		c.Next()

		logger.Info("HTTP request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"ip", c.ClientIP(),
			"latency_ms", time.Since(start).Milliseconds(),
		)
	}
}

// Recovery turns a panic into a 500 and logs it instead of crashing the
// server.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("Panic while handling request", "path", c.Request.URL.Path, "panic", recovered)
		c.AbortWithStatus(500)
	})
}
