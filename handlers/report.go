package handlers

import (
	"errors"
	"net/http"

	"futureclim/metrics"
	reportSvc "futureclim/services/report"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReportHandler serves report generation.
type ReportHandler struct {
	Svc     reportSvc.ReportService
	Metrics *metrics.Metrics
}

// GenerateHandler builds a period summary. Concurrent requests by the
// same user are rejected with 409 while one is pending.
func (h *ReportHandler) GenerateHandler(c *gin.Context) {
	var req reportSvc.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	rep, err := h.Svc.Generate(c.GetString("userID"), req)
	if err != nil {
		if errors.Is(err, reportSvc.ErrGenerationInProgress) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		getLogger(c).Error("Report generation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.Metrics.ReportsGenerated.Inc()
	c.JSON(http.StatusOK, rep)
}
