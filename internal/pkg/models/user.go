package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles. Role is assigned at signup (or just-in-time creation for
// invited customers) and never changes afterwards.
const (
	RoleCustomer = "customer"
	RoleSeller   = "seller"
	RoleAdmin    = "admin"
)

// User represents a registered identity in the system
type User struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Username    string    `json:"username" db:"username"`
	PhoneNumber string    `json:"phone_number" db:"phone_number"`
	Email       string    `json:"email,omitempty" db:"email"`
	Role        string    `json:"role" db:"role"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
