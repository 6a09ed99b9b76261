package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yasirmarwat09/wp-assign/internal/logger"
)

const requestIDHeader = "X-Request-ID"

// RequestID attaches a request-scoped child logger carrying a request id to
// the request context, and echoes the id in the response headers. An id
// supplied by the client is reused, otherwise a new one is generated.
func RequestID(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		l := log.GetChildLogger()
		l.UpdateContext(func(zc zerolog.Context) zerolog.Context {
			return zc.Str("request_id", requestID)
		})
		c.Request = c.Request.WithContext(l.WithContext(c.Request.Context()))

		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}
