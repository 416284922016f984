package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	interventionSvc "futureclim/services/intervention"
	"futureclim/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AttachmentHandler uploads intervention attachments to external storage
// and records the stored identifier on the intervention.
type AttachmentHandler struct {
	Interventions interventionSvc.InterventionService
	// StorageSvc is nil when no storage credentials are configured; the
	// endpoint then reports uploads as unavailable.
	StorageSvc storage.StorageService
}

// UploadHandler accepts a multipart "file" field, uploads it and appends
// the resulting identifier to the intervention's attachment list.
func (h *AttachmentHandler) UploadHandler(c *gin.Context) {
	if h.StorageSvc == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "attachment storage is not configured"})
		return
	}

	id := c.Param("id")
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, "interventions/"+id)
	if err != nil {
		getLogger(c).Error("Attachment upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file"})
		return
	}

	iv, err := h.Interventions.AddAttachment(id, publicID, actorName(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, iv)
}
