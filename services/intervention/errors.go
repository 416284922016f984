package intervention

import (
	"fmt"

	"futureclim/models"
)

// NotFoundError signals that a referenced record does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Resource, e.ID)
}

// ValidationError signals a rejected input on creation or update.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// InvalidTransitionError signals a lifecycle operation applied to an
// intervention whose current status does not allow it.
type InvalidTransitionError struct {
	Op     string
	Status models.InterventionStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s an intervention with status %q", e.Op, e.Status)
}
