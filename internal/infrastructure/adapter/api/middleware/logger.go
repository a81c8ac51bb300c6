package middleware

import (
	"time"

	coreport "github.com/omid-sharifi/timetrack/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// Logger middleware logs each request once it completes, correlated by
// request id and the resolved actor
func Logger(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		// The actor middleware has run by now, so the resolved identity is
		// available even though it registers later in the chain
		actor := ActorFromContext(c)
		statusCode := c.Writer.Status()

		fields := map[string]any{
			"method":     method,
			"path":       path,
			"status":     statusCode,
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         c.ClientIP(),
			"request_id": c.GetString(ContextRequestIDKey),
			"actor_id":   actor.ID,
			"actor_role": string(actor.Role),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.Errors()
		}

		if statusCode >= 500 {
			logger.Error("Request failed", fields)
			return
		}
		logger.Info("Request processed", fields)
	}
}
