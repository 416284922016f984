package report

import (
	"errors"
	"testing"
	"time"

	"futureclim/models"
	"futureclim/utils"
)

// stubInterventionRepo serves a fixed aggregation result; the report
// service only reads counts.
type stubInterventionRepo struct {
	counts map[models.InterventionStatus]int64
}

func (r *stubInterventionRepo) GetAll() ([]models.Intervention, error)         { return nil, nil }
func (r *stubInterventionRepo) GetByID(string) (*models.Intervention, error)   { return nil, nil }
func (r *stubInterventionRepo) Create(*models.Intervention) error              { return nil }
func (r *stubInterventionRepo) Replace(*models.Intervention) error             { return nil }
func (r *stubInterventionRepo) ListScheduledBetween(start, end time.Time) ([]models.Intervention, error) {
	return nil, nil
}
func (r *stubInterventionRepo) ListByPriorityIn([]models.InterventionPriority) ([]models.Intervention, error) {
	return nil, nil
}
func (r *stubInterventionRepo) CountByStatus() (map[models.InterventionStatus]int64, error) {
	return r.counts, nil
}
func (r *stubInterventionRepo) CountByPriority() (map[models.InterventionPriority]int64, error) {
	return nil, nil
}
func (r *stubInterventionRepo) CountByStatusBetween(start, end time.Time) (map[models.InterventionStatus]int64, error) {
	return r.counts, nil
}

func newTestReportService() *DefaultReportService {
	return &DefaultReportService{
		Repo: &stubInterventionRepo{counts: map[models.InterventionStatus]int64{
			models.StatusCompleted:  6,
			models.StatusCancelled:  1,
			models.StatusInProgress: 3,
		}},
		Guard: utils.NewMemoryInflightGuard(),
	}
}

func monthRequest() ReportRequest {
	return ReportRequest{
		Type: "monthly",
		From: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestGenerate(t *testing.T) {
	svc := newTestReportService()

	rep, err := svc.Generate("user-1", monthRequest())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if rep.Total != 10 {
		t.Errorf("total = %d, want 10", rep.Total)
	}
	if rep.CompletionRate != 0.6 {
		t.Errorf("completionRate = %v, want 0.6", rep.CompletionRate)
	}
	if rep.ID == "" {
		t.Error("expected a generated report id")
	}
}

func TestGenerateRejectsInvalidPeriod(t *testing.T) {
	svc := newTestReportService()

	req := monthRequest()
	req.To = req.From
	if _, err := svc.Generate("user-1", req); err == nil {
		t.Fatal("expected an error for an empty period")
	}
}

func TestGenerateRejectsOverlappingRequest(t *testing.T) {
	svc := newTestReportService()

	// Simulate a pending generation by holding the user's guard key.
	if ok, err := svc.Guard.Acquire("report:user-1", time.Minute); err != nil || !ok {
		t.Fatalf("failed to pre-acquire guard: ok=%v err=%v", ok, err)
	}

	_, err := svc.Generate("user-1", monthRequest())
	if !errors.Is(err, ErrGenerationInProgress) {
		t.Fatalf("Generate() error = %v, want ErrGenerationInProgress", err)
	}

	// A different user is unaffected.
	if _, err := svc.Generate("user-2", monthRequest()); err != nil {
		t.Errorf("Generate() for another user returned error: %v", err)
	}

	// Releasing the guard unblocks the user.
	if err := svc.Guard.Release("report:user-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Generate("user-1", monthRequest()); err != nil {
		t.Errorf("Generate() after release returned error: %v", err)
	}
}

func TestGenerateReleasesGuard(t *testing.T) {
	svc := newTestReportService()

	if _, err := svc.Generate("user-1", monthRequest()); err != nil {
		t.Fatal(err)
	}
	// The guard is released after a successful run.
	if _, err := svc.Generate("user-1", monthRequest()); err != nil {
		t.Errorf("second sequential Generate returned error: %v", err)
	}
}
