package models

import (
	"time"
)

// OTP purposes. A purpose scopes a challenge so a login code can never be
// replayed against, say, a phone-verification flow.
const (
	OTPPurposeLogin             = "login"
	OTPPurposeSignup            = "signup"
	OTPPurposePasswordReset     = "password_reset"
	OTPPurposePhoneVerification = "phone_verification"
)

// OTP statuses. Verified, expired and blocked are terminal; a record is
// never reused once it leaves pending.
const (
	OTPStatusPending  = "pending"
	OTPStatusVerified = "verified"
	OTPStatusExpired  = "expired"
	OTPStatusBlocked  = "blocked"
)

// OTP represents one issued one-time password challenge.
// At most one pending row exists per (phone, purpose) at any time.
type OTP struct {
	ID             string     `json:"id" db:"id"`
	PhoneNumber    string     `json:"phone_number" db:"phone_number"`
	Code           string     `json:"-" db:"code"`
	Purpose        string     `json:"purpose" db:"purpose"`
	Status         string     `json:"status" db:"status"`
	FailedAttempts int        `json:"failed_attempts" db:"failed_attempts"`
	ResendCount    int        `json:"resend_count" db:"resend_count"`
	Locked         bool       `json:"locked" db:"locked"`
	LockTime       *time.Time `json:"lock_time,omitempty" db:"lock_time"`
	VerifiedAt     *time.Time `json:"verified_at,omitempty" db:"verified_at"`
	ExpiresAt      time.Time  `json:"expires_at" db:"expires_at"`
	LastSentAt     time.Time  `json:"last_sent_at" db:"last_sent_at"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
}

// IsExpired reports whether the challenge has passed its expiry.
// Expiry is detected lazily at verify/resend time, not by a sweeper.
func (o *OTP) IsExpired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
