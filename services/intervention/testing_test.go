package intervention

import (
	"time"

	"futureclim/models"
)

// In-memory repositories backing the service tests. They mirror the store
// contracts: lookups return (nil, nil) on a miss and list order is
// insertion order.

type memInterventionRepo struct {
	items []models.Intervention
}

func (r *memInterventionRepo) GetAll() ([]models.Intervention, error) {
	out := make([]models.Intervention, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *memInterventionRepo) GetByID(id string) (*models.Intervention, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			iv := r.items[i]
			return &iv, nil
		}
	}
	return nil, nil
}

func (r *memInterventionRepo) Create(iv *models.Intervention) error {
	r.items = append(r.items, *iv)
	return nil
}

func (r *memInterventionRepo) Replace(iv *models.Intervention) error {
	for i := range r.items {
		if r.items[i].ID == iv.ID {
			r.items[i] = *iv
			return nil
		}
	}
	return nil
}

func (r *memInterventionRepo) ListScheduledBetween(start, end time.Time) ([]models.Intervention, error) {
	var out []models.Intervention
	for _, iv := range r.items {
		if !iv.ScheduledDate.Before(start) && iv.ScheduledDate.Before(end) {
			out = append(out, iv)
		}
	}
	return out, nil
}

func (r *memInterventionRepo) ListByPriorityIn(priorities []models.InterventionPriority) ([]models.Intervention, error) {
	var out []models.Intervention
	for _, iv := range r.items {
		for _, p := range priorities {
			if iv.Priority == p {
				out = append(out, iv)
				break
			}
		}
	}
	return out, nil
}

func (r *memInterventionRepo) CountByStatus() (map[models.InterventionStatus]int64, error) {
	out := make(map[models.InterventionStatus]int64)
	for _, iv := range r.items {
		out[iv.Status]++
	}
	return out, nil
}

func (r *memInterventionRepo) CountByPriority() (map[models.InterventionPriority]int64, error) {
	out := make(map[models.InterventionPriority]int64)
	for _, iv := range r.items {
		out[iv.Priority]++
	}
	return out, nil
}

func (r *memInterventionRepo) CountByStatusBetween(start, end time.Time) (map[models.InterventionStatus]int64, error) {
	out := make(map[models.InterventionStatus]int64)
	for _, iv := range r.items {
		if !iv.CreatedAt.Before(start) && iv.CreatedAt.Before(end) {
			out[iv.Status]++
		}
	}
	return out, nil
}

type memClientRepo struct {
	clients []models.Client
}

func (r *memClientRepo) GetAll() ([]models.Client, error) { return r.clients, nil }

func (r *memClientRepo) GetByID(id string) (*models.Client, error) {
	for i := range r.clients {
		if r.clients[i].ID == id {
			return &r.clients[i], nil
		}
	}
	return nil, nil
}

type memSiteRepo struct {
	sites []models.Site
}

func (r *memSiteRepo) GetAll() ([]models.Site, error) { return r.sites, nil }

func (r *memSiteRepo) GetByID(id string) (*models.Site, error) {
	for i := range r.sites {
		if r.sites[i].ID == id {
			return &r.sites[i], nil
		}
	}
	return nil, nil
}

func (r *memSiteRepo) GetByClientID(clientID string) ([]models.Site, error) {
	var out []models.Site
	for _, s := range r.sites {
		if s.ClientID == clientID {
			out = append(out, s)
		}
	}
	return out, nil
}

type memTechnicianRepo struct {
	technicians []models.Technician
}

func (r *memTechnicianRepo) GetAll() ([]models.Technician, error) { return r.technicians, nil }

func (r *memTechnicianRepo) GetByID(id string) (*models.Technician, error) {
	for i := range r.technicians {
		if r.technicians[i].ID == id {
			tech := r.technicians[i]
			return &tech, nil
		}
	}
	return nil, nil
}

func (r *memTechnicianRepo) SetAvailability(id string, available bool) error {
	for i := range r.technicians {
		if r.technicians[i].ID == id {
			r.technicians[i].Available = available
			return nil
		}
	}
	return nil
}

func (r *memTechnicianRepo) available(id string) bool {
	for _, t := range r.technicians {
		if t.ID == id {
			return t.Available
		}
	}
	return false
}

type memNotificationRepo struct {
	notifications []models.Notification
}

func (r *memNotificationRepo) GetAll() ([]models.Notification, error) {
	return r.notifications, nil
}

func (r *memNotificationRepo) Insert(n *models.Notification) error {
	r.notifications = append(r.notifications, *n)
	return nil
}

func (r *memNotificationRepo) MarkRead(id string) (*models.Notification, error) {
	for i := range r.notifications {
		if r.notifications[i].ID == id {
			r.notifications[i].Read = true
			n := r.notifications[i]
			return &n, nil
		}
	}
	return nil, nil
}

func (r *memNotificationRepo) CountUnread() (int64, error) {
	var n int64
	for _, x := range r.notifications {
		if !x.Read {
			n++
		}
	}
	return n, nil
}

// newTestService builds a service over a small fixed catalog: one client
// with one site, plus one available and one busy technician.
func newTestService() (*DefaultInterventionService, *memInterventionRepo, *memTechnicianRepo, *memNotificationRepo) {
	repo := &memInterventionRepo{}
	techs := &memTechnicianRepo{technicians: []models.Technician{
		{ID: "tech-1", Name: "Karim Messaoudi", Available: true},
		{ID: "tech-2", Name: "Sara Boualem", Available: false},
		{ID: "tech-3", Name: "Omar Belhadj", Available: true},
	}}
	notifs := &memNotificationRepo{}
	svc := &DefaultInterventionService{
		Repo: repo,
		Clients: &memClientRepo{clients: []models.Client{
			{ID: "client-1", Name: "Sonatrach"},
		}},
		Sites: &memSiteRepo{sites: []models.Site{
			{ID: "site-1", Name: "Siège Alger", ClientID: "client-1"},
			{ID: "site-9", Name: "Autre", ClientID: "client-9"},
		}},
		Technicians:   techs,
		Notifications: notifs,
	}
	return svc, repo, techs, notifs
}

func validInput() CreateInterventionInput {
	return CreateInterventionInput{
		Title:         "Maintenance climatisation",
		Description:   "Contrôle annuel",
		ClientID:      "client-1",
		SiteID:        "site-1",
		Type:          models.TypePreventive,
		Priority:      models.PriorityMedium,
		ScheduledDate: time.Now().Add(24 * time.Hour),
	}
}
