package handlers

import (
	"errors"
	"net/http"

	notificationSvc "futureclim/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler serves the notification feed.
type NotificationHandler struct {
	Svc notificationSvc.NotificationService
}

// ListHandler returns notifications newest first.
func (h *NotificationHandler) ListHandler(c *gin.Context) {
	list, err := h.Svc.List()
	if err != nil {
		getLogger(c).Error("Failed to list notifications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch notifications"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// MarkReadHandler marks one notification read. Re-marking an already
// read notification succeeds.
func (h *NotificationHandler) MarkReadHandler(c *gin.Context) {
	n, err := h.Svc.MarkRead(c.Param("id"))
	if err != nil {
		if errors.Is(err, notificationSvc.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
			return
		}
		getLogger(c).Error("Failed to mark notification read", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update notification"})
		return
	}
	c.JSON(http.StatusOK, n)
}
