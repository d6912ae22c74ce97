package middleware

import (
	"time"

	"tgrera-complaint-form/internal/common/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger writes one structured entry per request.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	log = logger.ForComponent(log, "http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"durationMs": time.Since(start).Milliseconds(),
			"clientIP":   c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			log.Error("request", fields)
		case status >= 400:
			log.Warn("request", fields)
		default:
			log.Info("request", fields)
		}
	}
}
