package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Lexv0lk/secondhand-market/internal/gateway/domain"
	marketdomain "github.com/Lexv0lk/secondhand-market/internal/market/domain"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/jwt"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

const (
	authHeaderName = "Authorization"
)

// NewAuthMiddleware resolves the bearer token to a live, non-suspended user and stores the id
// under jwt.UserIDContextKey.
func NewAuthMiddleware(
	secretKey string,
	tokenParser jwt.TokenParser,
	identities domain.IdentityStore,
	logger logging.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeaderName)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody("missing authorization header", codeUnauthorized))
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody("invalid auth header", codeUnauthorized))
			return
		}

		claims, err := tokenParser.ParseToken([]byte(secretKey), parts[1])
		if err != nil {
			logger.Warn("failed to parse user token", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody("invalid token", codeUnauthorized))
			return
		}

		user, err := identities.GetUser(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, &marketdomain.NotFoundError{}) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody("user no longer exists", codeUnauthorized))
				return
			}

			writeError(c, logger, err)
			return
		}

		if user.IsSuspended {
			c.AbortWithStatusJSON(http.StatusForbidden, errorBody("account is suspended", codeUserSuspended))
			return
		}

		c.Set(jwt.TokenContextKey, parts[1])
		c.Set(jwt.UserIDContextKey, user.ID)
		c.Next()
	}
}
