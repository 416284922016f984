package dashboard

import (
	"time"

	interventionRepo "futureclim/database/repository/intervention"
	kpiRepo "futureclim/database/repository/kpi"
	notificationRepo "futureclim/database/repository/notification"
	"futureclim/models"
)

// Overview is the dashboard payload: the stored KPI snapshot plus the
// urgent and today subsets capped for display, and the unread count.
type Overview struct {
	KPIs                []models.KPI          `json:"kpis"`
	Urgent              []models.Intervention `json:"urgent"`
	Today               []models.Intervention `json:"today"`
	UnreadNotifications int64                 `json:"unreadNotifications"`
}

// AnalyticsSummary holds counts derived from the intervention collection.
// Unlike the KPI snapshot these are always recomputed from live data.
type AnalyticsSummary struct {
	ByStatus   map[models.InterventionStatus]int64   `json:"byStatus"`
	ByPriority map[models.InterventionPriority]int64 `json:"byPriority"`
	Total      int64                                 `json:"total"`
}

// DashboardService assembles the aggregate views.
type DashboardService interface {
	Overview() (*Overview, error)
	Analytics() (*AnalyticsSummary, error)
}

// DefaultDashboardService implements DashboardService.
type DefaultDashboardService struct {
	KPIs          kpiRepo.KPIRepository
	Interventions interventionRepo.InterventionRepository
	Notifications notificationRepo.NotificationRepository
	// Location is the reference timezone for the "today" day bounds.
	Location *time.Location
}
