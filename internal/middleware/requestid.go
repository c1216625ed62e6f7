package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the Gin context key under which the request ID is stored.
const RequestIDKey = "request_id"

// RequestID injects a UUID v4 into every incoming request, stored in the
// Gin context and mirrored in the X-Request-ID response header so a single
// request can be traced across logs and clients.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()

		c.Set(RequestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)

		c.Next()
	}
}
