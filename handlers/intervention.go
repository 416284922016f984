package handlers

import (
	"errors"
	"net/http"

	"futureclim/metrics"
	interventionSvc "futureclim/services/intervention"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InterventionHandler serves the work-order endpoints.
type InterventionHandler struct {
	Svc     interventionSvc.InterventionService
	Metrics *metrics.Metrics
}

// writeServiceError maps service errors to HTTP status codes.
func writeServiceError(c *gin.Context, err error) {
	var nf *interventionSvc.NotFoundError
	var ve *interventionSvc.ValidationError
	var te *interventionSvc.InvalidTransitionError
	switch {
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &te):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		getLogger(c).Error("Intervention operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// actorName resolves the display name of the authenticated user for
// timeline attribution.
func actorName(c *gin.Context) string {
	if name := c.GetString("userName"); name != "" {
		return name
	}
	return "system"
}

// ListHandler returns interventions, optionally narrowed by the search,
// status and priority query parameters.
func (h *InterventionHandler) ListHandler(c *gin.Context) {
	f := interventionSvc.FilterFromQuery(
		c.Query("search"), c.Query("status"), c.Query("priority"),
	)
	list, err := h.Svc.List(f)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetHandler returns a single intervention by id.
func (h *InterventionHandler) GetHandler(c *gin.Context) {
	iv, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, iv)
}

// CreateHandler creates an intervention from the request payload.
func (h *InterventionHandler) CreateHandler(c *gin.Context) {
	var input interventionSvc.CreateInterventionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	iv, err := h.Svc.Create(input, actorName(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.Metrics.InterventionsCreated.Inc()
	c.JSON(http.StatusCreated, iv)
}

// UpdateHandler edits the descriptive fields of an intervention.
func (h *InterventionHandler) UpdateHandler(c *gin.Context) {
	var input interventionSvc.UpdateInterventionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	iv, err := h.Svc.Update(c.Param("id"), input, actorName(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, iv)
}

// AssignHandler assigns or reassigns a technician.
func (h *InterventionHandler) AssignHandler(c *gin.Context) {
	var req struct {
		TechnicianID string `json:"technicianId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	iv, err := h.Svc.Assign(c.Param("id"), req.TechnicianID, actorName(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.Metrics.LifecycleTransitions.WithLabelValues("assign").Inc()
	c.JSON(http.StatusOK, iv)
}

// StartHandler moves an assigned intervention to in progress.
func (h *InterventionHandler) StartHandler(c *gin.Context) {
	iv, err := h.Svc.Start(c.Param("id"), actorName(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.Metrics.LifecycleTransitions.WithLabelValues("start").Inc()
	c.JSON(http.StatusOK, iv)
}

// CompleteHandler closes an in-progress intervention.
func (h *InterventionHandler) CompleteHandler(c *gin.Context) {
	iv, err := h.Svc.Complete(c.Param("id"), actorName(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.Metrics.LifecycleTransitions.WithLabelValues("complete").Inc()
	c.JSON(http.StatusOK, iv)
}

// CancelHandler cancels any non-terminal intervention.
func (h *InterventionHandler) CancelHandler(c *gin.Context) {
	iv, err := h.Svc.Cancel(c.Param("id"), actorName(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.Metrics.LifecycleTransitions.WithLabelValues("cancel").Inc()
	c.JSON(http.StatusOK, iv)
}
