package interventionRepo

import (
	"time"

	"futureclim/models"
)

// InterventionRepository defines data-access methods for interventions.
// Interventions are never deleted; the lifecycle ends at a terminal status.
type InterventionRepository interface {
	// GetAll returns the collection ordered by creation time ascending,
	// preserving insertion order for display.
	GetAll() ([]models.Intervention, error)
	// GetByID returns (nil, nil) when no intervention matches.
	GetByID(id string) (*models.Intervention, error)
	Create(intervention *models.Intervention) error
	// Replace overwrites the full document for the given id.
	Replace(intervention *models.Intervention) error

	// Dashboard queries.
	ListScheduledBetween(start, end time.Time) ([]models.Intervention, error)
	ListByPriorityIn(priorities []models.InterventionPriority) ([]models.Intervention, error)

	// Aggregations for analytics and reports.
	CountByStatus() (map[models.InterventionStatus]int64, error)
	CountByPriority() (map[models.InterventionPriority]int64, error)
	CountByStatusBetween(start, end time.Time) (map[models.InterventionStatus]int64, error)
}
