package clientRepo

import "futureclim/models"

// ClientRepository defines data-access methods for clients.
// Clients are immutable reference data; there is no update or delete.
type ClientRepository interface {
	GetAll() ([]models.Client, error)
	// GetByID returns (nil, nil) when no client matches.
	GetByID(id string) (*models.Client, error)
}
