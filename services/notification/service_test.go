package notification

import (
	"errors"
	"testing"
	"time"

	"futureclim/models"
)

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

func newTestService() (*DefaultNotificationService, *memNotificationRepo) {
	repo := &memNotificationRepo{notifications: []models.Notification{
		{ID: "n1", Title: "Intervention urgente", Type: models.NotificationWarning, Timestamp: time.Now(), Read: false},
		{ID: "n2", Title: "Rapport disponible", Type: models.NotificationInfo, Timestamp: time.Now(), Read: true},
	}}
	return &DefaultNotificationService{Repo: repo}, repo
}

func TestMarkRead(t *testing.T) {
	svc, repo := newTestService()

	n, err := svc.MarkRead("n1")
	if err != nil {
		t.Fatalf("MarkRead returned error: %v", err)
	}
	if !n.Read {
		t.Error("returned notification should be read")
	}
	if !repo.notifications[0].Read {
		t.Error("stored notification should be read")
	}
}

func TestMarkReadIdempotent(t *testing.T) {
	svc, _ := newTestService()

	// Re-marking an already-read notification succeeds.
	n, err := svc.MarkRead("n2")
	if err != nil {
		t.Fatalf("MarkRead returned error: %v", err)
	}
	if !n.Read {
		t.Error("notification should stay read")
	}
}

func TestMarkReadUnknownID(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.MarkRead("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("MarkRead() error = %v, want ErrNotFound", err)
	}
}

func TestUnreadCount(t *testing.T) {
	svc, _ := newTestService()

	count, err := svc.UnreadCount()
	if err != nil {
		t.Fatalf("UnreadCount returned error: %v", err)
	}
	if count != 1 {
		t.Errorf("UnreadCount() = %d, want 1", count)
	}

	if _, err := svc.MarkRead("n1"); err != nil {
		t.Fatal(err)
	}
	count, _ = svc.UnreadCount()
	if count != 0 {
		t.Errorf("UnreadCount() after MarkRead = %d, want 0", count)
	}
}
