package intervention

import (
	"fmt"
	"time"

	"futureclim/models"
	"futureclim/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// appendEvent adds an audit entry to the in-memory record. The caller
// persists the record in the same Replace, so the status change and its
// event reach the store together.
func (s *DefaultInterventionService) appendEvent(iv *models.Intervention, typ models.TimelineEventType, description, actor string) {
	iv.Timeline = append(iv.Timeline, models.TimelineEvent{
		ID:          uuid.NewString(),
		Type:        typ,
		Description: description,
		Timestamp:   time.Now(),
		User:        actor,
	})
}

// freeTechnician releases the assigned technician, if any.
func (s *DefaultInterventionService) freeTechnician(iv *models.Intervention) {
	if iv.AssignedTo == "" {
		return
	}
	if err := s.Technicians.SetAvailability(iv.AssignedTo, true); err != nil {
		utils.GetLogger().Warn("Failed to release technician",
			zap.String("technicianId", iv.AssignedTo), zap.Error(err))
	}
}

// Assign attaches a technician to a draft or already-assigned intervention.
func (s *DefaultInterventionService) Assign(id, technicianID, actor string) (*models.Intervention, error) {
	iv, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if iv.Status != models.StatusDraft && iv.Status != models.StatusAssigned {
		return nil, &InvalidTransitionError{Op: "assign", Status: iv.Status}
	}

	tech, err := s.availableTechnician(technicianID)
	if err != nil {
		return nil, err
	}

	// Reassignment releases the previous technician.
	if iv.AssignedTo != "" && iv.AssignedTo != technicianID {
		s.freeTechnician(iv)
	}

	iv.AssignedTo = technicianID
	iv.Status = models.StatusAssigned
	s.appendEvent(iv, models.EventAssigned, fmt.Sprintf("Assignée à %s", tech.Name), actor)

	if err := s.Repo.Replace(iv); err != nil {
		return nil, err
	}
	if err := s.Technicians.SetAvailability(technicianID, false); err != nil {
		utils.GetLogger().Warn("Failed to mark technician unavailable",
			zap.String("technicianId", technicianID), zap.Error(err))
	}
	return iv, nil
}

// Start moves an assigned intervention to in_progress.
func (s *DefaultInterventionService) Start(id, actor string) (*models.Intervention, error) {
	iv, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if iv.Status != models.StatusAssigned {
		return nil, &InvalidTransitionError{Op: "start", Status: iv.Status}
	}

	iv.Status = models.StatusInProgress
	s.appendEvent(iv, models.EventStarted, "Intervention démarrée", actor)

	if err := s.Repo.Replace(iv); err != nil {
		return nil, err
	}
	return iv, nil
}

// Complete closes an in-progress intervention, stamps completedAt and
// releases the technician.
func (s *DefaultInterventionService) Complete(id, actor string) (*models.Intervention, error) {
	iv, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if iv.Status != models.StatusInProgress {
		return nil, &InvalidTransitionError{Op: "complete", Status: iv.Status}
	}

	now := time.Now()
	iv.Status = models.StatusCompleted
	iv.CompletedAt = &now
	s.appendEvent(iv, models.EventCompleted, "Intervention terminée", actor)

	if err := s.Repo.Replace(iv); err != nil {
		return nil, err
	}
	s.freeTechnician(iv)
	return iv, nil
}

// Cancel aborts any non-terminal intervention and releases the technician.
// The timeline event enum has no dedicated cancellation type, so the audit
// entry is recorded as "updated".
func (s *DefaultInterventionService) Cancel(id, actor string) (*models.Intervention, error) {
	iv, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if iv.Status.Terminal() {
		return nil, &InvalidTransitionError{Op: "cancel", Status: iv.Status}
	}

	iv.Status = models.StatusCancelled
	s.appendEvent(iv, models.EventUpdated, "Intervention annulée", actor)

	if err := s.Repo.Replace(iv); err != nil {
		return nil, err
	}
	s.freeTechnician(iv)
	return iv, nil
}
