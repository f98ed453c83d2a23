package middleware

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jaras-platform/jaras/internal/infrastructure/metrics"
	"github.com/jaras-platform/jaras/internal/infrastructure/ratelimit"
	"github.com/jaras-platform/jaras/internal/shared/constants"
	"github.com/jaras-platform/jaras/internal/shared/errors"
	"github.com/jaras-platform/jaras/internal/shared/logger"
	"github.com/jaras-platform/jaras/internal/shared/utils"
)

// RateLimit limits requests per client IP. When the primary limiter
// errors (Redis unavailable) the fallback decides; with no fallback the
// request is let through.
func RateLimit(primary, fallback ratelimit.Limiter, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		decision, err := primary.Allow(c.Request.Context(), key)
		if err != nil {
			log.Warnw("rate limiter unavailable", "error", err)
			if fallback == nil {
				c.Next()
				return
			}
			if decision, err = fallback.Allow(c.Request.Context(), key); err != nil {
				c.Next()
				return
			}
		}

		if !decision.Allowed {
			metrics.RecordRateLimited()
			retry := int(math.Ceil(decision.RetryAfter.Seconds()))
			if retry < 1 {
				retry = 1
			}
			c.Header(constants.HeaderRetryAfter, strconv.Itoa(retry))
			utils.ErrorResponseWithError(c, errors.NewRateLimitedError("rate limit exceeded, please try again later"))
			c.Abort()
			return
		}

		c.Next()
	}
}
