package intervention

import (
	"time"

	clientRepo "futureclim/database/repository/client"
	interventionRepo "futureclim/database/repository/intervention"
	notificationRepo "futureclim/database/repository/notification"
	siteRepo "futureclim/database/repository/site"
	technicianRepo "futureclim/database/repository/technician"
	"futureclim/models"
)

// CreateInterventionInput is the payload for creating an intervention.
// ID, createdAt and the timeline are assigned by the service.
type CreateInterventionInput struct {
	Title         string                      `json:"title"`
	Description   string                      `json:"description"`
	ClientID      string                      `json:"clientId"`
	SiteID        string                      `json:"siteId"`
	Type          models.InterventionType     `json:"type"`
	Priority      models.InterventionPriority `json:"priority"`
	AssignedTo    string                      `json:"assignedTo"`
	ScheduledDate time.Time                   `json:"scheduledDate"`
	Attachments   []string                    `json:"attachments"`
}

// UpdateInterventionInput carries the mutable descriptive fields. Nil
// pointers leave the current value untouched; lifecycle fields (status,
// assignment, completion) move only through the transition operations.
type UpdateInterventionInput struct {
	Title         *string                      `json:"title"`
	Description   *string                      `json:"description"`
	Priority      *models.InterventionPriority `json:"priority"`
	ScheduledDate *time.Time                   `json:"scheduledDate"`
}

// InterventionService manages work orders and their status lifecycle.
// Every transition appends its timeline event in the same store write,
// keeping the timeline a complete audit log.
type InterventionService interface {
	Create(input CreateInterventionInput, actor string) (*models.Intervention, error)
	Get(id string) (*models.Intervention, error)
	List(f Filter) ([]models.Intervention, error)
	Update(id string, input UpdateInterventionInput, actor string) (*models.Intervention, error)
	AddAttachment(id, filename, actor string) (*models.Intervention, error)

	Assign(id, technicianID, actor string) (*models.Intervention, error)
	Start(id, actor string) (*models.Intervention, error)
	Complete(id, actor string) (*models.Intervention, error)
	Cancel(id, actor string) (*models.Intervention, error)
}

// DefaultInterventionService implements InterventionService.
type DefaultInterventionService struct {
	Repo          interventionRepo.InterventionRepository
	Clients       clientRepo.ClientRepository
	Sites         siteRepo.SiteRepository
	Technicians   technicianRepo.TechnicianRepository
	Notifications notificationRepo.NotificationRepository
}
