package technicianRepo

import "futureclim/models"

// TechnicianRepository defines data-access methods for technicians.
type TechnicianRepository interface {
	GetAll() ([]models.Technician, error)
	// GetByID returns (nil, nil) when no technician matches.
	GetByID(id string) (*models.Technician, error)
	// SetAvailability flips the availability flag. Unknown ids are an error.
	SetAvailability(id string, available bool) error
}
