package siteRepo

import "futureclim/models"

// SiteRepository defines data-access methods for sites.
type SiteRepository interface {
	GetAll() ([]models.Site, error)
	// GetByID returns (nil, nil) when no site matches.
	GetByID(id string) (*models.Site, error)
	GetByClientID(clientID string) ([]models.Site, error)
}
