package models

import "time"

// Intervention types.
type InterventionType string

const (
	TypePreventive InterventionType = "preventive"
	TypeCorrective InterventionType = "corrective"
)

// Intervention priorities.
type InterventionPriority string

const (
	PriorityLow    InterventionPriority = "low"
	PriorityMedium InterventionPriority = "medium"
	PriorityHigh   InterventionPriority = "high"
	PriorityUrgent InterventionPriority = "urgent"
)

// Intervention lifecycle statuses.
type InterventionStatus string

const (
	StatusDraft      InterventionStatus = "draft"
	StatusAssigned   InterventionStatus = "assigned"
	StatusInProgress InterventionStatus = "in_progress"
	StatusCompleted  InterventionStatus = "completed"
	StatusCancelled  InterventionStatus = "cancelled"
)

// Timeline event types.
type TimelineEventType string

const (
	EventCreated   TimelineEventType = "created"
	EventAssigned  TimelineEventType = "assigned"
	EventStarted   TimelineEventType = "started"
	EventUpdated   TimelineEventType = "updated"
	EventCompleted TimelineEventType = "completed"
)

// TimelineEvent is an append-only audit entry attached to an intervention.
// Events are never mutated or reordered; display order is insertion order.
type TimelineEvent struct {
	ID          string            `bson:"id" json:"id"`
	Type        TimelineEventType `bson:"type" json:"type"`
	Description string            `bson:"description" json:"description"`
	Timestamp   time.Time         `bson:"timestamp" json:"timestamp"`
	User        string            `bson:"user" json:"user"` // display name of the actor
}

// Intervention is a work order for a scheduled or reactive maintenance visit.
type Intervention struct {
	ID            string               `bson:"id" json:"id"`
	Title         string               `bson:"title" json:"title"`
	Description   string               `bson:"description" json:"description"`
	ClientID      string               `bson:"client_id" json:"clientId"`
	SiteID        string               `bson:"site_id" json:"siteId"`
	Type          InterventionType     `bson:"type" json:"type"`
	Priority      InterventionPriority `bson:"priority" json:"priority"`
	Status        InterventionStatus   `bson:"status" json:"status"`
	AssignedTo    string               `bson:"assigned_to,omitempty" json:"assignedTo,omitempty"`
	CreatedAt     time.Time            `bson:"created_at" json:"createdAt"`
	ScheduledDate time.Time            `bson:"scheduled_date" json:"scheduledDate"`
	CompletedAt   *time.Time           `bson:"completed_at,omitempty" json:"completedAt,omitempty"`
	Attachments   []string             `bson:"attachments" json:"attachments"`
	Timeline      []TimelineEvent      `bson:"timeline" json:"timeline"`
}

// Terminal reports whether no further transition can be applied.
func (s InterventionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ValidType reports whether t is a known intervention type.
func ValidType(t InterventionType) bool {
	return t == TypePreventive || t == TypeCorrective
}

// ValidPriority reports whether p is a known priority.
func ValidPriority(p InterventionPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}
