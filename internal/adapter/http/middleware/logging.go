package middleware

import (
	"log/slog"
	"time"

	"supplylink/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// RequestLogger tags every request with an id, binds a request-scoped logger
// into the context for downstream layers, and logs one line per request.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)

		reqLogger := logger.With("request_id", requestID)
		c.Request = c.Request.WithContext(pkg.ContextWithLogger(c.Request.Context(), reqLogger))

		start := time.Now()
		c.Next()

		reqLogger.Info("request handled",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
