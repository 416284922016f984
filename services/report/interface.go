package report

import (
	"errors"
	"time"

	interventionRepo "futureclim/database/repository/intervention"
	"futureclim/models"
	"futureclim/utils"
)

// ErrGenerationInProgress is returned when the same user already has a
// report being generated. Overlapping requests are rejected instead of
// queued.
var ErrGenerationInProgress = errors.New("a report generation is already in progress")

// ReportRequest selects the period to summarize.
type ReportRequest struct {
	Type string    `json:"type"` // e.g. "monthly", "activity"
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Report is a period summary over the intervention collection.
type Report struct {
	ID             string                              `json:"id"`
	Type           string                              `json:"type"`
	From           time.Time                           `json:"from"`
	To             time.Time                           `json:"to"`
	GeneratedAt    time.Time                           `json:"generatedAt"`
	StatusCounts   map[models.InterventionStatus]int64 `json:"statusCounts"`
	Total          int64                               `json:"total"`
	CompletionRate float64                             `json:"completionRate"`
}

// ReportService generates period summaries.
type ReportService interface {
	Generate(userID string, req ReportRequest) (*Report, error)
}

// DefaultReportService implements ReportService.
type DefaultReportService struct {
	Repo  interventionRepo.InterventionRepository
	Guard utils.InflightGuard
}
