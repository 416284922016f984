package intervention

import (
	"errors"
	"testing"

	"futureclim/models"
)

func createDraft(t *testing.T, svc *DefaultInterventionService) *models.Intervention {
	t.Helper()
	iv, err := svc.Create(validInput(), "Ahmed Benali")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	return iv
}

func TestAssignDraft(t *testing.T) {
	svc, repo, techs, _ := newTestService()
	iv := createDraft(t, svc)

	assigned, err := svc.Assign(iv.ID, "tech-1", "Ahmed Benali")
	if err != nil {
		t.Fatalf("Assign returned error: %v", err)
	}
	if assigned.Status != models.StatusAssigned {
		t.Errorf("status = %q, want %q", assigned.Status, models.StatusAssigned)
	}
	if assigned.AssignedTo != "tech-1" {
		t.Errorf("assignedTo = %q", assigned.AssignedTo)
	}
	if techs.available("tech-1") {
		t.Error("technician should be unavailable after assignment")
	}

	last := assigned.Timeline[len(assigned.Timeline)-1]
	if last.Type != models.EventAssigned {
		t.Errorf("event type = %q, want %q", last.Type, models.EventAssigned)
	}
	if last.Description != "Assignée à Karim Messaoudi" {
		t.Errorf("event description = %q", last.Description)
	}

	// Status change and event land in the same stored record.
	stored, _ := repo.GetByID(iv.ID)
	if stored.Status != models.StatusAssigned || len(stored.Timeline) != 2 {
		t.Errorf("stored record out of sync: status=%q timeline=%d", stored.Status, len(stored.Timeline))
	}
}

func TestReassignReleasesPreviousTechnician(t *testing.T) {
	svc, _, techs, _ := newTestService()
	iv := createDraft(t, svc)

	if _, err := svc.Assign(iv.ID, "tech-1", "x"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Assign(iv.ID, "tech-3", "x"); err != nil {
		t.Fatalf("reassign returned error: %v", err)
	}
	if !techs.available("tech-1") {
		t.Error("previous technician should be released on reassignment")
	}
	if techs.available("tech-3") {
		t.Error("new technician should be unavailable")
	}
}

func TestAssignRejectsBusyTechnician(t *testing.T) {
	svc, _, _, _ := newTestService()
	iv := createDraft(t, svc)

	_, err := svc.Assign(iv.ID, "tech-2", "x")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Assign() error = %v, want ValidationError", err)
	}
}

func TestFullLifecycle(t *testing.T) {
	svc, _, techs, _ := newTestService()
	iv := createDraft(t, svc)

	if _, err := svc.Assign(iv.ID, "tech-1", "x"); err != nil {
		t.Fatal(err)
	}
	started, err := svc.Start(iv.ID, "Karim Messaoudi")
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if started.Status != models.StatusInProgress {
		t.Errorf("status = %q, want in_progress", started.Status)
	}

	completed, err := svc.Complete(iv.ID, "Karim Messaoudi")
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if completed.Status != models.StatusCompleted {
		t.Errorf("status = %q, want completed", completed.Status)
	}
	if completed.CompletedAt == nil {
		t.Fatal("completedAt should be set")
	}
	if completed.CompletedAt.Before(completed.CreatedAt) {
		t.Error("completedAt precedes createdAt")
	}
	if !techs.available("tech-1") {
		t.Error("technician should be released on completion")
	}

	// created, assigned, started, completed.
	if len(completed.Timeline) != 4 {
		t.Fatalf("timeline length = %d, want 4", len(completed.Timeline))
	}
	wantTypes := []models.TimelineEventType{
		models.EventCreated, models.EventAssigned, models.EventStarted, models.EventCompleted,
	}
	for i, want := range wantTypes {
		if completed.Timeline[i].Type != want {
			t.Errorf("timeline[%d].Type = %q, want %q", i, completed.Timeline[i].Type, want)
		}
	}
}

func TestTransitionGuards(t *testing.T) {
	tests := []struct {
		name string
		run  func(svc *DefaultInterventionService, id string) error
	}{
		{"start a draft", func(svc *DefaultInterventionService, id string) error {
			_, err := svc.Start(id, "x")
			return err
		}},
		{"complete a draft", func(svc *DefaultInterventionService, id string) error {
			_, err := svc.Complete(id, "x")
			return err
		}},
		{"assign an in-progress intervention", func(svc *DefaultInterventionService, id string) error {
			if _, err := svc.Assign(id, "tech-1", "x"); err != nil {
				return err
			}
			if _, err := svc.Start(id, "x"); err != nil {
				return err
			}
			_, err := svc.Assign(id, "tech-3", "x")
			return err
		}},
		{"cancel a completed intervention", func(svc *DefaultInterventionService, id string) error {
			if _, err := svc.Assign(id, "tech-1", "x"); err != nil {
				return err
			}
			if _, err := svc.Start(id, "x"); err != nil {
				return err
			}
			if _, err := svc.Complete(id, "x"); err != nil {
				return err
			}
			_, err := svc.Cancel(id, "x")
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _ := newTestService()
			iv := createDraft(t, svc)
			err := tt.run(svc, iv.ID)
			var te *InvalidTransitionError
			if !errors.As(err, &te) {
				t.Errorf("error = %v, want InvalidTransitionError", err)
			}
		})
	}
}

func TestCancelFromAnyActiveStatus(t *testing.T) {
	svc, _, techs, _ := newTestService()

	// Cancel a draft.
	draft := createDraft(t, svc)
	cancelled, err := svc.Cancel(draft.ID, "Ahmed Benali")
	if err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	if cancelled.Status != models.StatusCancelled {
		t.Errorf("status = %q, want cancelled", cancelled.Status)
	}
	last := cancelled.Timeline[len(cancelled.Timeline)-1]
	if last.Description != "Intervention annulée" {
		t.Errorf("cancel event description = %q", last.Description)
	}

	// Cancel an in-progress intervention and release the technician.
	second := createDraft(t, svc)
	if _, err := svc.Assign(second.ID, "tech-1", "x"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Start(second.ID, "x"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Cancel(second.ID, "x"); err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	if !techs.available("tech-1") {
		t.Error("technician should be released on cancellation")
	}
}

func TestTransitionUnknownID(t *testing.T) {
	svc, _, _, _ := newTestService()

	var nf *NotFoundError
	if _, err := svc.Start("missing", "x"); !errors.As(err, &nf) {
		t.Errorf("Start() error = %v, want NotFoundError", err)
	}
	if _, err := svc.Assign("missing", "tech-1", "x"); !errors.As(err, &nf) {
		t.Errorf("Assign() error = %v, want NotFoundError", err)
	}
}
