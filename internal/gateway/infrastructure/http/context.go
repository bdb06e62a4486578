package http

import (
	"strconv"

	"github.com/Lexv0lk/secondhand-market/internal/pkg/jwt"
	"github.com/gin-gonic/gin"
)

const (
	IDParamKey = "id"

	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

func currentUserID(c *gin.Context) int {
	return c.GetInt(jwt.UserIDContextKey)
}

// pathID reads the :id segment. On failure the request is already aborted with 400.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param(IDParamKey))
	if err != nil || id <= 0 {
		abortInvalidRequest(c, "invalid id")
		return 0, false
	}

	return id, true
}
