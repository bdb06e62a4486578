package http

import (
	"net/http"

	"github.com/Lexv0lk/secondhand-market/internal/gateway/domain"
	marketdomain "github.com/Lexv0lk/secondhand-market/internal/market/domain"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

type statusRequestBody struct {
	Status string `json:"status" binding:"required"`
}

type suspensionRequestBody struct {
	Suspended *bool `json:"suspended" binding:"required"`
}

type AdminHandler struct {
	service domain.AdminService
	logger  logging.Logger
}

func NewAdminHandler(service domain.AdminService, logger logging.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger,
	}
}

func (h *AdminHandler) ListReports(c *gin.Context) {
	reports, err := h.service.ListReports(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, reports)
}

func (h *AdminHandler) SetReportStatus(c *gin.Context) {
	reportID, ok := pathID(c)
	if !ok {
		return
	}

	var body statusRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		abortInvalidRequest(c, "invalid request body")
		return
	}

	report, err := h.service.SetReportStatus(
		c.Request.Context(),
		currentUserID(c),
		reportID,
		marketdomain.ReportStatus(body.Status),
	)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *AdminHandler) SetUserSuspended(c *gin.Context) {
	userID, ok := pathID(c)
	if !ok {
		return
	}

	var body suspensionRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		abortInvalidRequest(c, "invalid request body")
		return
	}

	user, err := h.service.SetUserSuspended(c.Request.Context(), currentUserID(c), userID, *body.Suspended)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) SetProductStatus(c *gin.Context) {
	productID, ok := pathID(c)
	if !ok {
		return
	}

	var body statusRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		abortInvalidRequest(c, "invalid request body")
		return
	}

	product, err := h.service.SetProductStatus(
		c.Request.Context(),
		currentUserID(c),
		productID,
		marketdomain.ProductStatus(body.Status),
	)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, product)
}
