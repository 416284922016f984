package kpiRepo

import "futureclim/models"

// KPIRepository defines data-access methods for the stored KPI snapshot.
// The snapshot is recomputed externally and replaced wholesale.
type KPIRepository interface {
	GetAll() ([]models.KPI, error)
	ReplaceAll(kpis []models.KPI) error
}
