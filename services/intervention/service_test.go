package intervention

import (
	"errors"
	"testing"
	"time"

	"futureclim/models"
)

func TestCreateDraftWithoutAssignee(t *testing.T) {
	svc, repo, _, _ := newTestService()

	iv, err := svc.Create(validInput(), "Ahmed Benali")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if iv.Status != models.StatusDraft {
		t.Errorf("status = %q, want %q", iv.Status, models.StatusDraft)
	}
	if iv.ID == "" {
		t.Error("expected a generated id")
	}
	if iv.Attachments == nil {
		t.Error("attachments should default to an empty slice, not nil")
	}
	if len(iv.Timeline) != 1 {
		t.Fatalf("timeline length = %d, want 1", len(iv.Timeline))
	}
	ev := iv.Timeline[0]
	if ev.Type != models.EventCreated {
		t.Errorf("timeline event type = %q, want %q", ev.Type, models.EventCreated)
	}
	if ev.Description != "Intervention créée" {
		t.Errorf("timeline event description = %q", ev.Description)
	}
	if ev.User != "Ahmed Benali" {
		t.Errorf("timeline event user = %q", ev.User)
	}
	if len(repo.items) != 1 {
		t.Errorf("stored %d interventions, want 1", len(repo.items))
	}
}

func TestCreateAssignedWithTechnician(t *testing.T) {
	svc, _, techs, _ := newTestService()

	input := validInput()
	input.AssignedTo = "tech-1"
	iv, err := svc.Create(input, "Ahmed Benali")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if iv.Status != models.StatusAssigned {
		t.Errorf("status = %q, want %q", iv.Status, models.StatusAssigned)
	}
	// Exactly one event even when created pre-assigned.
	if len(iv.Timeline) != 1 {
		t.Errorf("timeline length = %d, want 1", len(iv.Timeline))
	}
	if techs.available("tech-1") {
		t.Error("assigned technician should be marked unavailable")
	}
}

func TestCreateValidation(t *testing.T) {
	svc, repo, _, _ := newTestService()

	tests := []struct {
		name   string
		mutate func(*CreateInterventionInput)
	}{
		{"missing title", func(in *CreateInterventionInput) { in.Title = "" }},
		{"missing client", func(in *CreateInterventionInput) { in.ClientID = "" }},
		{"missing site", func(in *CreateInterventionInput) { in.SiteID = "" }},
		{"missing scheduled date", func(in *CreateInterventionInput) { in.ScheduledDate = time.Time{} }},
		{"unknown type", func(in *CreateInterventionInput) { in.Type = "inspection" }},
		{"unknown priority", func(in *CreateInterventionInput) { in.Priority = "critical" }},
		{"site of another client", func(in *CreateInterventionInput) { in.SiteID = "site-9" }},
		{"busy technician", func(in *CreateInterventionInput) { in.AssignedTo = "tech-2" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)
			_, err := svc.Create(input, "x")
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("Create() error = %v, want ValidationError", err)
			}
		})
	}
	if len(repo.items) != 0 {
		t.Errorf("rejected creations must not reach the store, found %d", len(repo.items))
	}
}

func TestCreateUnknownReferences(t *testing.T) {
	svc, _, _, _ := newTestService()

	tests := []struct {
		name   string
		mutate func(*CreateInterventionInput)
	}{
		{"unknown client", func(in *CreateInterventionInput) { in.ClientID = "client-404" }},
		{"unknown site", func(in *CreateInterventionInput) { in.SiteID = "site-404" }},
		{"unknown technician", func(in *CreateInterventionInput) { in.AssignedTo = "tech-404" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)
			_, err := svc.Create(input, "x")
			var nf *NotFoundError
			if !errors.As(err, &nf) {
				t.Errorf("Create() error = %v, want NotFoundError", err)
			}
		})
	}
}

func TestCreateUrgentNotification(t *testing.T) {
	svc, _, _, notifs := newTestService()

	for _, p := range []models.InterventionPriority{models.PriorityLow, models.PriorityMedium} {
		input := validInput()
		input.Priority = p
		if _, err := svc.Create(input, "x"); err != nil {
			t.Fatalf("Create(%s) returned error: %v", p, err)
		}
	}
	if len(notifs.notifications) != 0 {
		t.Fatalf("low/medium priority must not notify, got %d", len(notifs.notifications))
	}

	input := validInput()
	input.Priority = models.PriorityUrgent
	if _, err := svc.Create(input, "x"); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if len(notifs.notifications) != 1 {
		t.Fatalf("urgent priority should notify once, got %d", len(notifs.notifications))
	}
	if notifs.notifications[0].Type != models.NotificationWarning {
		t.Errorf("notification type = %q, want warning", notifs.notifications[0].Type)
	}
}

func TestGetUnknownID(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Get("missing")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Get() error = %v, want NotFoundError", err)
	}
}

func TestUpdateMergesFields(t *testing.T) {
	svc, _, _, _ := newTestService()

	created, err := svc.Create(validInput(), "x")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	title := "Réparation urgente"
	priority := models.PriorityHigh
	updated, err := svc.Update(created.ID, UpdateInterventionInput{
		Title:    &title,
		Priority: &priority,
	}, "Ahmed Benali")
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Title != title {
		t.Errorf("title = %q, want %q", updated.Title, title)
	}
	if updated.Priority != priority {
		t.Errorf("priority = %q, want %q", updated.Priority, priority)
	}
	// Untouched fields keep their value.
	if updated.Description != created.Description {
		t.Errorf("description changed: %q", updated.Description)
	}
	if len(updated.Timeline) != 2 {
		t.Fatalf("timeline length = %d, want 2", len(updated.Timeline))
	}
	last := updated.Timeline[len(updated.Timeline)-1]
	if last.Type != models.EventUpdated || last.Description != "Intervention mise à jour" {
		t.Errorf("unexpected update event: %+v", last)
	}
}

func TestUpdateRejectsEmptyPayload(t *testing.T) {
	svc, _, _, _ := newTestService()
	created, _ := svc.Create(validInput(), "x")

	_, err := svc.Update(created.ID, UpdateInterventionInput{}, "x")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Update() error = %v, want ValidationError", err)
	}
}

func TestUpdateUnknownID(t *testing.T) {
	svc, repo, _, _ := newTestService()
	created, _ := svc.Create(validInput(), "x")

	title := "t"
	_, err := svc.Update("missing", UpdateInterventionInput{Title: &title}, "x")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Update() error = %v, want NotFoundError", err)
	}
	// The collection is untouched by the failed update.
	if len(repo.items) != 1 {
		t.Fatalf("collection length = %d, want 1", len(repo.items))
	}
	stored, _ := repo.GetByID(created.ID)
	if stored.Title != created.Title || len(stored.Timeline) != 1 {
		t.Errorf("existing record changed by a failed update: %+v", stored)
	}
}

func TestAddAttachment(t *testing.T) {
	svc, _, _, _ := newTestService()
	created, _ := svc.Create(validInput(), "x")

	iv, err := svc.AddAttachment(created.ID, "rapport.pdf", "Ahmed Benali")
	if err != nil {
		t.Fatalf("AddAttachment returned error: %v", err)
	}
	if len(iv.Attachments) != 1 || iv.Attachments[0] != "rapport.pdf" {
		t.Errorf("attachments = %v", iv.Attachments)
	}
	last := iv.Timeline[len(iv.Timeline)-1]
	if last.Description != "Pièce jointe ajoutée : rapport.pdf" {
		t.Errorf("attachment event description = %q", last.Description)
	}
}

func TestListFilters(t *testing.T) {
	svc, _, _, _ := newTestService()

	first := validInput()
	first.Title = "Climatisation bureau"
	second := validInput()
	second.Title = "Chaudière atelier"
	second.Priority = models.PriorityHigh
	if _, err := svc.Create(first, "x"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(second, "x"); err != nil {
		t.Fatal(err)
	}

	all, err := svc.List(Filter{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("List() = %d items, want 2", len(all))
	}

	// Search matches the resolved client name, not just titles.
	byClient, err := svc.List(Filter{Search: "sonatrach"})
	if err != nil {
		t.Fatal(err)
	}
	if len(byClient) != 2 {
		t.Errorf("client-name search = %d items, want 2", len(byClient))
	}

	byTitle, err := svc.List(Filter{Search: "chaudière"})
	if err != nil {
		t.Fatal(err)
	}
	if len(byTitle) != 1 || byTitle[0].Title != "Chaudière atelier" {
		t.Errorf("title search = %v", byTitle)
	}

	byPriority, err := svc.List(Filter{Priority: models.PriorityHigh})
	if err != nil {
		t.Fatal(err)
	}
	if len(byPriority) != 1 {
		t.Errorf("priority filter = %d items, want 1", len(byPriority))
	}
}
