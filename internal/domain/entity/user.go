package entity

import "time"

// User roles. Admins manage tax config and the catalog; staff take orders.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User is an account belonging to a business.
type User struct {
	ID           string
	BusinessID   string
	Name         string
	Email        string
	PhoneNumber  string
	PasswordHash string
	Role         string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
