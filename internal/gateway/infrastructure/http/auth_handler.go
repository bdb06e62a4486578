package http

import (
	"net/http"

	"github.com/Lexv0lk/secondhand-market/internal/gateway/domain"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

type registerRequestBody struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequestBody struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type changePasswordRequestBody struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// Bio is a pointer so that an explicit empty string clears it while a missing field is rejected.
type updateProfileRequestBody struct {
	Bio *string `json:"bio" binding:"required"`
}

type AuthHandler struct {
	service  domain.AuthService
	profiles domain.ProfileService
	logger   logging.Logger
}

func NewAuthHandler(service domain.AuthService, profiles domain.ProfileService, logger logging.Logger) *AuthHandler {
	return &AuthHandler{
		service:  service,
		profiles: profiles,
		logger:   logger,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var body registerRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		abortInvalidRequest(c, "invalid request body")
		return
	}

	account, err := h.service.Register(c.Request.Context(), body.Username, body.Email, body.Password)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       account.ID,
		"username": account.Username,
		"email":    account.Email,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var body loginRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		abortInvalidRequest(c, "invalid request body")
		return
	}

	token, err := h.service.Login(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *AuthHandler) Me(c *gin.Context) {
	profile, err := h.profiles.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var body updateProfileRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		abortInvalidRequest(c, "invalid request body")
		return
	}

	user, err := h.profiles.UpdateBio(c.Request.Context(), currentUserID(c), *body.Bio)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var body changePasswordRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		abortInvalidRequest(c, "invalid request body")
		return
	}

	err := h.service.ChangePassword(c.Request.Context(), currentUserID(c), body.CurrentPassword, body.NewPassword)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password changed"})
}
