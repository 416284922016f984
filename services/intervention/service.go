package intervention

import (
	"fmt"
	"time"

	"futureclim/models"
	"futureclim/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create validates the input, resolves references and inserts the new
// intervention. Status is "assigned" when a technician was supplied,
// "draft" otherwise. The timeline starts with exactly one "created" event.
func (s *DefaultInterventionService) Create(input CreateInterventionInput, actor string) (*models.Intervention, error) {
	if err := s.validateCreate(input); err != nil {
		return nil, err
	}

	now := time.Now()
	status := models.StatusDraft
	if input.AssignedTo != "" {
		status = models.StatusAssigned
	}

	attachments := input.Attachments
	if attachments == nil {
		attachments = []string{}
	}

	iv := &models.Intervention{
		ID:            uuid.NewString(),
		Title:         input.Title,
		Description:   input.Description,
		ClientID:      input.ClientID,
		SiteID:        input.SiteID,
		Type:          input.Type,
		Priority:      input.Priority,
		Status:        status,
		AssignedTo:    input.AssignedTo,
		CreatedAt:     now,
		ScheduledDate: input.ScheduledDate,
		Attachments:   attachments,
		Timeline: []models.TimelineEvent{{
			ID:          uuid.NewString(),
			Type:        models.EventCreated,
			Description: "Intervention créée",
			Timestamp:   now,
			User:        actor,
		}},
	}

	if err := s.Repo.Create(iv); err != nil {
		return nil, err
	}

	if input.AssignedTo != "" {
		if err := s.Technicians.SetAvailability(input.AssignedTo, false); err != nil {
			utils.GetLogger().Warn("Failed to mark technician unavailable",
				zap.String("technicianId", input.AssignedTo), zap.Error(err))
		}
	}

	s.notifyIfUrgent(iv)
	return iv, nil
}

func (s *DefaultInterventionService) validateCreate(input CreateInterventionInput) error {
	switch {
	case input.Title == "":
		return &ValidationError{Message: "title is required"}
	case input.ClientID == "":
		return &ValidationError{Message: "clientId is required"}
	case input.SiteID == "":
		return &ValidationError{Message: "siteId is required"}
	case input.ScheduledDate.IsZero():
		return &ValidationError{Message: "scheduledDate is required"}
	case !models.ValidType(input.Type):
		return &ValidationError{Message: fmt.Sprintf("unknown intervention type %q", input.Type)}
	case !models.ValidPriority(input.Priority):
		return &ValidationError{Message: fmt.Sprintf("unknown priority %q", input.Priority)}
	}

	client, err := s.Clients.GetByID(input.ClientID)
	if err != nil {
		return err
	}
	if client == nil {
		return &NotFoundError{Resource: "client", ID: input.ClientID}
	}

	site, err := s.Sites.GetByID(input.SiteID)
	if err != nil {
		return err
	}
	if site == nil {
		return &NotFoundError{Resource: "site", ID: input.SiteID}
	}
	if site.ClientID != input.ClientID {
		return &ValidationError{Message: fmt.Sprintf("site %s does not belong to client %s", input.SiteID, input.ClientID)}
	}

	if input.AssignedTo != "" {
		if _, err := s.availableTechnician(input.AssignedTo); err != nil {
			return err
		}
	}
	return nil
}

// availableTechnician resolves a technician and rejects unavailable ones.
func (s *DefaultInterventionService) availableTechnician(id string) (*models.Technician, error) {
	tech, err := s.Technicians.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tech == nil {
		return nil, &NotFoundError{Resource: "technician", ID: id}
	}
	if !tech.Available {
		return nil, &ValidationError{Message: fmt.Sprintf("technician %s is not available", tech.Name)}
	}
	return tech, nil
}

// notifyIfUrgent records a dashboard warning for high/urgent work orders.
func (s *DefaultInterventionService) notifyIfUrgent(iv *models.Intervention) {
	if iv.Priority != models.PriorityUrgent && iv.Priority != models.PriorityHigh {
		return
	}
	n := &models.Notification{
		ID:        uuid.NewString(),
		Title:     "Intervention urgente",
		Message:   fmt.Sprintf("Nouvelle intervention priorité élevée : %s", iv.Title),
		Type:      models.NotificationWarning,
		Timestamp: time.Now(),
		Read:      false,
		ActionURL: "/interventions/" + iv.ID,
	}
	if err := s.Notifications.Insert(n); err != nil {
		utils.GetLogger().Warn("Failed to insert urgency notification", zap.Error(err))
	}
}

// Get returns a single intervention or a NotFoundError.
func (s *DefaultInterventionService) Get(id string) (*models.Intervention, error) {
	iv, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if iv == nil {
		return nil, &NotFoundError{Resource: "intervention", ID: id}
	}
	return iv, nil
}

// List returns the filtered snapshot in insertion order. The search term
// joins against resolved client names, so filtering happens in memory.
func (s *DefaultInterventionService) List(f Filter) ([]models.Intervention, error) {
	interventions, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	if f.Empty() {
		return interventions, nil
	}
	clients, err := s.Clients.GetAll()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.Name
	}
	return Apply(interventions, names, f), nil
}

// Update merges the mutable descriptive fields and appends an "updated"
// timeline event.
func (s *DefaultInterventionService) Update(id string, input UpdateInterventionInput, actor string) (*models.Intervention, error) {
	if input.Title == nil && input.Description == nil && input.Priority == nil && input.ScheduledDate == nil {
		return nil, &ValidationError{Message: "no fields to update"}
	}
	if input.Title != nil && *input.Title == "" {
		return nil, &ValidationError{Message: "title cannot be empty"}
	}
	if input.Priority != nil && !models.ValidPriority(*input.Priority) {
		return nil, &ValidationError{Message: fmt.Sprintf("unknown priority %q", *input.Priority)}
	}

	iv, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		iv.Title = *input.Title
	}
	if input.Description != nil {
		iv.Description = *input.Description
	}
	if input.Priority != nil {
		iv.Priority = *input.Priority
	}
	if input.ScheduledDate != nil {
		iv.ScheduledDate = *input.ScheduledDate
	}

	s.appendEvent(iv, models.EventUpdated, "Intervention mise à jour", actor)
	if err := s.Repo.Replace(iv); err != nil {
		return nil, err
	}
	return iv, nil
}

// AddAttachment appends a stored-file identifier to the intervention.
// Only names are retained; the bytes live in the external file service.
func (s *DefaultInterventionService) AddAttachment(id, filename, actor string) (*models.Intervention, error) {
	if filename == "" {
		return nil, &ValidationError{Message: "filename is required"}
	}
	iv, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	iv.Attachments = append(iv.Attachments, filename)
	s.appendEvent(iv, models.EventUpdated, fmt.Sprintf("Pièce jointe ajoutée : %s", filename), actor)
	if err := s.Repo.Replace(iv); err != nil {
		return nil, err
	}
	return iv, nil
}
