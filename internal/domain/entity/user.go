package entity

import "time"

// Valid roles for User.
const (
	RoleOwner   = "owner"
	RoleManager = "manager"
	RoleWorker  = "worker"
)

// User represents a system user (belongs to a Farm).
type User struct {
	ID           string
	FarmID       string
	Email        string
	PasswordHash string // bcrypt hash, never plain text after persistence
	Name         string
	Role         string // owner, manager, worker
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
