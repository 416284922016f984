package handlers

import (
	"net/http"

	clientRepo "futureclim/database/repository/client"
	siteRepo "futureclim/database/repository/site"
	technicianRepo "futureclim/database/repository/technician"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the read-only reference collections that
// interventions point at.
type CatalogHandler struct {
	Clients     clientRepo.ClientRepository
	Sites       siteRepo.SiteRepository
	Technicians technicianRepo.TechnicianRepository
}

// ListClientsHandler returns all clients.
func (h *CatalogHandler) ListClientsHandler(c *gin.Context) {
	clients, err := h.Clients.GetAll()
	if err != nil {
		getLogger(c).Error("Failed to list clients", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch clients"})
		return
	}
	c.JSON(http.StatusOK, clients)
}

// GetClientHandler returns one client by id.
func (h *CatalogHandler) GetClientHandler(c *gin.Context) {
	client, err := h.Clients.GetByID(c.Param("id"))
	if err != nil {
		getLogger(c).Error("Failed to fetch client", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch client"})
		return
	}
	if client == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		return
	}
	c.JSON(http.StatusOK, client)
}

// ListSitesHandler returns sites, optionally narrowed to one client via
// the clientId query parameter.
func (h *CatalogHandler) ListSitesHandler(c *gin.Context) {
	var err error
	var sites interface{}
	if clientID := c.Query("clientId"); clientID != "" {
		sites, err = h.Sites.GetByClientID(clientID)
	} else {
		sites, err = h.Sites.GetAll()
	}
	if err != nil {
		getLogger(c).Error("Failed to list sites", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch sites"})
		return
	}
	c.JSON(http.StatusOK, sites)
}

// ListTechniciansHandler returns all technicians with their availability.
func (h *CatalogHandler) ListTechniciansHandler(c *gin.Context) {
	technicians, err := h.Technicians.GetAll()
	if err != nil {
		getLogger(c).Error("Failed to list technicians", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch technicians"})
		return
	}
	c.JSON(http.StatusOK, technicians)
}
