package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jaras-platform/jaras/internal/shared/constants"
	"github.com/jaras-platform/jaras/internal/shared/logger"
	"github.com/jaras-platform/jaras/internal/shared/utils/logutil"
)

const maxLoggedQuery = 256

// Logger logs one line per request. Server errors go out at error level,
// client errors at warn, everything else at debug.
func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", logutil.TruncateForLog(c.Request.URL.RawQuery, maxLoggedQuery),
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"body_size", c.Writer.Size(),
		}

		if requestID := c.GetString(constants.ContextKeyRequestID); requestID != "" {
			args = append(args, "request_id", requestID)
		}
		if lang, ok := c.Get(constants.ContextKeyLang); ok {
			args = append(args, "lang", lang)
		}
		if len(c.Errors) > 0 {
			args = append(args, "error", c.Errors.String())
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			log.Errorw("HTTP request completed with server error", args...)
		case status >= 400:
			log.Warnw("HTTP request completed with client error", args...)
		default:
			log.Debugw("HTTP request completed successfully", args...)
		}
	}
}
