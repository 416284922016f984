package models

import "time"

// Notification types.
const (
	NotificationInfo    = "info"
	NotificationWarning = "warning"
	NotificationError   = "error"
	NotificationSuccess = "success"
)

// Notification is a dashboard alert. The only mutation is marking it read.
type Notification struct {
	ID        string    `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Message   string    `bson:"message" json:"message"`
	Type      string    `bson:"type" json:"type"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	Read      bool      `bson:"read" json:"read"`
	ActionURL string    `bson:"action_url,omitempty" json:"actionUrl,omitempty"`
}
