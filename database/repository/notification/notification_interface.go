package notificationRepo

import "futureclim/models"

// NotificationRepository defines data-access methods for notifications.
type NotificationRepository interface {
	// GetAll returns notifications newest first.
	GetAll() ([]models.Notification, error)
	Insert(n *models.Notification) error
	// MarkRead sets read=true and returns the updated record.
	// Returns (nil, nil) when no notification matches.
	MarkRead(id string) (*models.Notification, error)
	CountUnread() (int64, error)
}
