package userRepo

import "futureclim/models"

// UserRepository defines data-access methods for operator accounts.
type UserRepository interface {
	// GetByEmail returns (nil, nil) when no user matches.
	GetByEmail(email string) (*models.User, error)
	// GetByID returns (nil, nil) when no user matches.
	GetByID(id string) (*models.User, error)
	Create(user *models.User) error
}
