package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact statuses. Rejected is terminal; a cancelled invitation returns
// the contact to new.
const (
	ContactStatusNew      = "new"
	ContactStatusInvited  = "invited"
	ContactStatusAccepted = "accepted"
	ContactStatusRejected = "rejected"
)

// Contact is a seller's record of a real-world person, created before that
// person registers. Exactly one of PhoneNumber/Email must be present.
type Contact struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	SellerID      uuid.UUID  `json:"seller_id" db:"seller_id"`
	InvitedUserID *uuid.UUID `json:"invited_user_id,omitempty" db:"invited_user_id"`
	PhoneNumber   *string    `json:"phone_number,omitempty" db:"phone_number"`
	Email         *string    `json:"email,omitempty" db:"email"`
	FullName      string     `json:"full_name" db:"full_name"`
	Status        string     `json:"status" db:"status"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// HasPhone reports whether the contact carries a usable phone number
func (c *Contact) HasPhone() bool {
	return c.PhoneNumber != nil && *c.PhoneNumber != ""
}

// HasEmail reports whether the contact carries a usable email address
func (c *Contact) HasEmail() bool {
	return c.Email != nil && *c.Email != ""
}
