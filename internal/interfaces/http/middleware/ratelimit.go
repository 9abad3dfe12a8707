package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"timedpost/internal/infrastructure/ratelimit"
	"timedpost/internal/shared/logger"
	"timedpost/internal/shared/security"
	"timedpost/internal/shared/utils"
)

// RateLimit enforces one rate-limit policy for the routes it wraps. The key
// is the policy prefix plus the client IP, so the contact form and the tools
// never share quota.
func RateLimit(limiter ratelimit.Limiter, config ratelimit.Config, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		result := limiter.Check(utils.ClientIP(c.Request), config, now)

		if result.Allowed {
			c.Next()
			return
		}

		retryAfter := int(math.Ceil(result.ResetAt.Sub(now).Seconds()))
		if retryAfter < 1 {
			retryAfter = 1
		}

		security.LogEvent(log, c.Request, security.EventRateLimitExceeded, map[string]any{
			"limit":    config.Limit,
			"reset_at": result.ResetAt.UTC().Format(time.RFC3339),
		})

		c.Header("Retry-After", strconv.Itoa(retryAfter))
		utils.ErrorResponse(c, http.StatusTooManyRequests, "Too many requests")
		c.Abort()
	}
}
