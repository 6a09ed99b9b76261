package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yasirmarwat09/wp-assign/internal/logger"
)

// RequestLogger logs one entry per completed request through the
// request-scoped logger installed by RequestID.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log := logger.FromRequest(c.Request)
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request completed")
	}
}
