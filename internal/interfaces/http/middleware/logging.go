package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"timedpost/internal/shared/logger"
	"timedpost/internal/shared/utils"
)

// RequestLogger logs one line per completed request, leveled by status class.
// The client IP comes from the forwarding headers, matching what the rate
// limiter keys on.
func RequestLogger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", latency,
			"client_ip", utils.ClientIP(c.Request),
			"body_size", c.Writer.Size(),
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			log.Errorw("HTTP request completed with server error", args...)
		case status >= 400:
			log.Warnw("HTTP request completed with client error", args...)
		default:
			log.Debugw("HTTP request completed", args...)
		}
	}
}
