package dashboard

import (
	"time"

	"futureclim/models"
	"futureclim/services/intervention"
)

// Display caps matching the dashboard cards.
const (
	maxUrgent = 3
	maxToday  = 4
)

// Overview assembles the dashboard payload. Subsets come from Mongo-side
// queries; order is preserved and only the first N are shown.
func (s *DefaultDashboardService) Overview() (*Overview, error) {
	kpis, err := s.KPIs.GetAll()
	if err != nil {
		return nil, err
	}

	urgent, err := s.Interventions.ListByPriorityIn([]models.InterventionPriority{
		models.PriorityUrgent, models.PriorityHigh,
	})
	if err != nil {
		return nil, err
	}
	if len(urgent) > maxUrgent {
		urgent = urgent[:maxUrgent]
	}

	start, end := intervention.DayBounds(time.Now(), s.Location)
	today, err := s.Interventions.ListScheduledBetween(start, end)
	if err != nil {
		return nil, err
	}
	if len(today) > maxToday {
		today = today[:maxToday]
	}

	unread, err := s.Notifications.CountUnread()
	if err != nil {
		return nil, err
	}

	return &Overview{
		KPIs:                kpis,
		Urgent:              urgent,
		Today:               today,
		UnreadNotifications: unread,
	}, nil
}

// Analytics recomputes per-status and per-priority counts from live data.
func (s *DefaultDashboardService) Analytics() (*AnalyticsSummary, error) {
	byStatus, err := s.Interventions.CountByStatus()
	if err != nil {
		return nil, err
	}
	byPriority, err := s.Interventions.CountByPriority()
	if err != nil {
		return nil, err
	}
	var total int64
	for _, c := range byStatus {
		total += c
	}
	return &AnalyticsSummary{
		ByStatus:   byStatus,
		ByPriority: byPriority,
		Total:      total,
	}, nil
}
