package models

import "time"

// User roles.
const (
	RoleAdmin              = "admin"
	RoleMaintenanceManager = "maintenance_manager"
	RoleProjectManager     = "project_manager"
)

// User is an operator account (admin, dispatcher, manager).
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name" json:"name"`
	Role         string    `bson:"role" json:"role"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}
