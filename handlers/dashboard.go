package handlers

import (
	"net/http"

	"futureclim/services/dashboard"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler serves the aggregate views.
type DashboardHandler struct {
	Svc dashboard.DashboardService
}

// OverviewHandler returns the dashboard payload.
func (h *DashboardHandler) OverviewHandler(c *gin.Context) {
	overview, err := h.Svc.Overview()
	if err != nil {
		getLogger(c).Error("Failed to build dashboard overview", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build dashboard"})
		return
	}
	c.JSON(http.StatusOK, overview)
}

// AnalyticsHandler returns counts recomputed from the live collection.
func (h *DashboardHandler) AnalyticsHandler(c *gin.Context) {
	summary, err := h.Svc.Analytics()
	if err != nil {
		getLogger(c).Error("Failed to compute analytics", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute analytics"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
