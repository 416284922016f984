package report

import (
	"fmt"
	"time"

	"futureclim/models"

	"github.com/google/uuid"
)

// guardTTL bounds how long a crashed generation can block the next one.
const guardTTL = 2 * time.Minute

// Generate summarizes interventions created in [req.From, req.To).
// A second call for the same user while one is pending is rejected with
// ErrGenerationInProgress.
func (s *DefaultReportService) Generate(userID string, req ReportRequest) (*Report, error) {
	if req.Type == "" {
		req.Type = "activity"
	}
	if !req.From.Before(req.To) {
		return nil, fmt.Errorf("invalid report period: from must precede to")
	}

	key := "report:" + userID
	ok, err := s.Guard.Acquire(key, guardTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire report guard: %w", err)
	}
	if !ok {
		return nil, ErrGenerationInProgress
	}
	defer func() { _ = s.Guard.Release(key) }()

	counts, err := s.Repo.CountByStatusBetween(req.From, req.To)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, c := range counts {
		total += c
	}
	var completionRate float64
	if total > 0 {
		completionRate = float64(counts[models.StatusCompleted]) / float64(total)
	}

	return &Report{
		ID:             uuid.NewString(),
		Type:           req.Type,
		From:           req.From,
		To:             req.To,
		GeneratedAt:    time.Now(),
		StatusCounts:   counts,
		Total:          total,
		CompletionRate: completionRate,
	}, nil
}
