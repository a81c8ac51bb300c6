package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Request id header and context key
const (
	HeaderRequestID     = "X-Request-ID"
	ContextRequestIDKey = "requestId"
)

// RequestID attaches a request id to every request, generating one when the
// caller did not supply it, and echoes it back on the response
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(ContextRequestIDKey, requestID)
		c.Writer.Header().Set(HeaderRequestID, requestID)

		c.Next()
	}
}
