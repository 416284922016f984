package intervention

import (
	"strings"
	"time"

	"futureclim/models"
)

// Filter narrows an intervention snapshot. Empty fields match everything;
// the three predicates are ANDed. Search is a case-insensitive substring
// match against the title or the resolved client name.
type Filter struct {
	Search   string
	Status   models.InterventionStatus
	Priority models.InterventionPriority
}

// Empty reports whether the filter matches every record.
func (f Filter) Empty() bool {
	return f.Search == "" && f.Status == "" && f.Priority == ""
}

// Matches evaluates the filter against a single record. clientName is the
// resolved name of the record's client ("" when unknown).
func (f Filter) Matches(iv models.Intervention, clientName string) bool {
	if f.Status != "" && iv.Status != f.Status {
		return false
	}
	if f.Priority != "" && iv.Priority != f.Priority {
		return false
	}
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(iv.Title), term) &&
			!strings.Contains(strings.ToLower(clientName), term) {
			return false
		}
	}
	return true
}

// Apply returns the matching records, preserving input order. clientNames
// maps client ids to display names for the search predicate.
func Apply(interventions []models.Intervention, clientNames map[string]string, f Filter) []models.Intervention {
	out := make([]models.Intervention, 0, len(interventions))
	for _, iv := range interventions {
		if f.Matches(iv, clientNames[iv.ClientID]) {
			out = append(out, iv)
		}
	}
	return out
}

// FilterFromQuery builds a Filter from raw query parameters. The literal
// value "all" is treated the same as an absent parameter.
func FilterFromQuery(search, status, priority string) Filter {
	if status == "all" {
		status = ""
	}
	if priority == "all" {
		priority = ""
	}
	return Filter{
		Search:   search,
		Status:   models.InterventionStatus(status),
		Priority: models.InterventionPriority(priority),
	}
}

// UrgentSubset returns interventions with urgent or high priority,
// preserving input order.
func UrgentSubset(interventions []models.Intervention) []models.Intervention {
	out := make([]models.Intervention, 0)
	for _, iv := range interventions {
		if iv.Priority == models.PriorityUrgent || iv.Priority == models.PriorityHigh {
			out = append(out, iv)
		}
	}
	return out
}

// DayBounds returns the [start, end) range of the calendar day containing
// now in the given location.
func DayBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// TodaySubset returns interventions scheduled on the calendar day of now
// in the given location, preserving input order.
func TodaySubset(interventions []models.Intervention, now time.Time, loc *time.Location) []models.Intervention {
	start, end := DayBounds(now, loc)
	out := make([]models.Intervention, 0)
	for _, iv := range interventions {
		sd := iv.ScheduledDate
		if !sd.Before(start) && sd.Before(end) {
			out = append(out, iv)
		}
	}
	return out
}
