package logger

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// AccessMiddleware logs one http_access record per request at debug level.
// The request body is never read.
func AccessMiddleware(l *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		l.Debug("http_access",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"duration_ms", time.Since(start).Milliseconds(),
			"ip", c.ClientIP(),
		)
	}
}
