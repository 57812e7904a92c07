package models

import (
	"time"

	"github.com/google/uuid"
)

// Invitation statuses
const (
	InvitationStatusPending   = "pending"
	InvitationStatusAccepted  = "accepted"
	InvitationStatusCancelled = "cancelled"
	InvitationStatusRejected  = "rejected"
)

// Invitation delivery methods
const (
	InviteMethodSMS   = "sms"
	InviteMethodEmail = "email"
)

// Invitation is one outreach attempt tied to a contact. The invite token is
// the only credential a registering user needs to be associated with it.
// A contact may accumulate invitations historically (re-invite after
// cancellation) but at most one is pending at a time.
type Invitation struct {
	ID                uuid.UUID  `json:"id" db:"id"`
	SellerID          uuid.UUID  `json:"seller_id" db:"seller_id"`
	ContactID         uuid.UUID  `json:"contact_id" db:"contact_id"`
	InviteToken       string     `json:"invite_token" db:"invite_token"`
	Method            string     `json:"method" db:"method"`
	Status            string     `json:"status" db:"status"`
	InviteSentAt      time.Time  `json:"invite_sent_at" db:"invite_sent_at"`
	InviteCancelledAt *time.Time `json:"invite_cancelled_at,omitempty" db:"invite_cancelled_at"`
	InviteAcceptedAt  *time.Time `json:"invite_accepted_at,omitempty" db:"invite_accepted_at"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
}
