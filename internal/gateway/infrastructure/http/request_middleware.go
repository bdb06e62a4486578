package http

import (
	"time"

	"github.com/Lexv0lk/secondhand-market/internal/pkg/logging"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/metrics"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const unmatchedRoute = "unmatched"

// NewRequestMiddleware tags every request with an id, logs it once and records HTTP metrics.
func NewRequestMiddleware(logger logging.Logger, registry *metrics.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(requestIDKey, requestID)
		c.Header(requestIDHeader, requestID)

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}

		status := c.Writer.Status()
		elapsed := time.Since(start)

		registry.ObserveRequest(c.Request.Method, route, status, elapsed)
		logger.Info("request handled",
			"request_id", requestID,
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"duration", elapsed,
		)
	}
}
