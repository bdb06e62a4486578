package http

import (
	"net/http"

	"github.com/Lexv0lk/secondhand-market/internal/gateway/domain"
	marketdomain "github.com/Lexv0lk/secondhand-market/internal/market/domain"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/logging"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// targetType and reason are validated by the report case so that their failures carry a reason code.
type fileReportRequestBody struct {
	TargetType string `json:"targetType"`
	TargetID   int    `json:"targetId" binding:"required"`
	Reason     string `json:"reason"`
}

type ReportsHandler struct {
	service domain.ReportService
	metrics *metrics.Registry
	logger  logging.Logger
}

func NewReportsHandler(service domain.ReportService, registry *metrics.Registry, logger logging.Logger) *ReportsHandler {
	return &ReportsHandler{
		service: service,
		metrics: registry,
		logger:  logger,
	}
}

func (h *ReportsHandler) File(c *gin.Context) {
	var body fileReportRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		abortInvalidRequest(c, "invalid request body")
		return
	}

	outcome, err := h.service.FileReport(
		c.Request.Context(),
		currentUserID(c),
		marketdomain.ReportTargetType(body.TargetType),
		body.TargetID,
		body.Reason,
	)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.metrics.Reports.WithLabelValues(string(outcome.Report.TargetType)).Inc()
	if outcome.Escalated {
		h.metrics.Escalations.Inc()
	}

	c.JSON(http.StatusCreated, outcome)
}
