package notification

import (
	"errors"

	notificationRepo "futureclim/database/repository/notification"
	"futureclim/models"
)

// ErrNotFound is returned when a notification id does not exist.
var ErrNotFound = errors.New("notification not found")

// NotificationService exposes dashboard notifications. The only mutation
// is marking one read, which is idempotent.
type NotificationService interface {
	List() ([]models.Notification, error)
	MarkRead(id string) (*models.Notification, error)
	UnreadCount() (int64, error)
}

// DefaultNotificationService implements NotificationService.
type DefaultNotificationService struct {
	Repo notificationRepo.NotificationRepository
}
