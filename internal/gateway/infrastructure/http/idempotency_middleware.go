package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Lexv0lk/secondhand-market/internal/gateway/domain"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

const idempotencyHeader = "Idempotency-Key"

// NewIdempotencyMiddleware rejects a repeated Idempotency-Key from the same user. Store failures
// let the request through. A key whose request failed on the server side is released so the
// client can retry it.
func NewIdempotencyMiddleware(guard domain.IdempotencyGuard, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.GetHeader(idempotencyHeader))
		if key == "" {
			c.Next()
			return
		}

		scopedKey := "purchase:" + strconv.Itoa(currentUserID(c)) + ":" + key

		acquired, err := guard.Acquire(c.Request.Context(), scopedKey)
		if err != nil {
			logger.Warn("idempotency check failed, passing request through", "error", err.Error())
			c.Next()
			return
		}

		if !acquired {
			c.AbortWithStatusJSON(http.StatusConflict, errorBody("duplicate request", codeDuplicateRequest))
			return
		}

		c.Next()

		if c.Writer.Status() >= http.StatusInternalServerError {
			if err := guard.Release(c.Request.Context(), scopedKey); err != nil {
				logger.Warn("failed to release idempotency key", "error", err.Error())
			}
		}
	}
}
