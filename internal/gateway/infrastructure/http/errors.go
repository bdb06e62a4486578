package http

import (
	"errors"
	"net/http"

	authdomain "github.com/Lexv0lk/secondhand-market/internal/auth/domain"
	marketdomain "github.com/Lexv0lk/secondhand-market/internal/market/domain"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

const (
	codeInvalidRequest     = "invalid_request"
	codeUnauthorized       = "unauthorized"
	codeForbidden          = "forbidden"
	codeUserSuspended      = "user_suspended"
	codeInvalidCredentials = "invalid_credentials"
	codeEmailTaken         = "email_taken"
	codeInvalidArguments   = "invalid_arguments"
	codeDuplicateRequest   = "duplicate_request"
	codeInternal           = "internal"
)

func errorBody(message, code string) gin.H {
	return gin.H{"errors": message, "code": code}
}

func abortInvalidRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorBody(message, codeInvalidRequest))
}

// writeError maps a domain error onto its HTTP status. Anything unrecognised is logged and hidden behind a 500.
func writeError(c *gin.Context, logger logging.Logger, err error) {
	status, code := classifyError(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "route", c.FullPath(), "error", err)
		c.AbortWithStatusJSON(status, errorBody("internal server error", codeInternal))
		return
	}

	c.AbortWithStatusJSON(status, errorBody(err.Error(), code))
}

func classifyError(err error) (int, string) {
	var (
		integrityErr *marketdomain.IntegrityError
		notFoundErr  *marketdomain.NotFoundError
		conflictErr  *marketdomain.ConflictError
		invalidErr   *marketdomain.InvalidOperationError
		forbiddenErr *marketdomain.ForbiddenError
	)

	// IntegrityError wraps a NotFoundError and must win over it.
	switch {
	case errors.As(err, &integrityErr):
		return http.StatusInternalServerError, codeInternal
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, notFoundErr.Entity + "_not_found"
	case errors.As(err, &conflictErr):
		return http.StatusConflict, conflictErr.Reason
	case errors.As(err, &invalidErr):
		return http.StatusBadRequest, invalidErr.Reason
	case errors.As(err, &forbiddenErr):
		return http.StatusForbidden, codeForbidden
	}

	switch {
	case errors.Is(err, &authdomain.InvalidArgumentsError{}):
		return http.StatusBadRequest, codeInvalidArguments
	case errors.Is(err, &authdomain.CredentialsMismatchError{}):
		return http.StatusUnauthorized, codeInvalidCredentials
	case errors.Is(err, &authdomain.UserNotFoundError{}):
		return http.StatusNotFound, marketdomain.EntityUser + "_not_found"
	case errors.Is(err, &authdomain.EmailTakenError{}):
		return http.StatusConflict, codeEmailTaken
	case errors.Is(err, &authdomain.UserSuspendedError{}):
		return http.StatusForbidden, codeUserSuspended
	}

	return http.StatusInternalServerError, codeInternal
}
