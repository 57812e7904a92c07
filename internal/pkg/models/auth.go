package models

import "github.com/google/uuid"

// SignupRequest represents a direct signup request. Customers cannot use
// this path; they only enter through an invitation.
type SignupRequest struct {
	Username    string `json:"username"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Email       string `json:"email"`
	Role        string `json:"role" validate:"required"`
}

// LoginRequest represents a passwordless phone login request
type LoginRequest struct {
	PhoneNumber   string `json:"phone_number" validate:"required"`
	Role          string `json:"role" validate:"required"`
	DeepLinkToken string `json:"deep_link_token,omitempty"`
	DeviceToken   string `json:"device_token,omitempty"`
	DeviceType    string `json:"device_type,omitempty"`
	DeviceOS      string `json:"device_os,omitempty"`
}

// SendOTPRequest represents a request to issue an OTP challenge
type SendOTPRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	Purpose     string `json:"purpose"`
}

// VerifyOTPRequest represents a request to verify an OTP code
type VerifyOTPRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	Code        string `json:"code" validate:"required"`
	Purpose     string `json:"purpose"`
	Role        string `json:"role"`
}

// AcceptInviteRequest represents an invitee's decision on an invitation
type AcceptInviteRequest struct {
	PhoneNumber      string    `json:"phone_number"`
	InviteID         uuid.UUID `json:"invite_id" validate:"required"`
	UserID           uuid.UUID `json:"user_id" validate:"required"`
	InvitationStatus string    `json:"invitation_status" validate:"required"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token          string    `json:"token,omitempty"`
	UserID         string    `json:"user_id"`
	Role           string    `json:"role"`
	ExpiresAt      int64     `json:"expires_at,omitempty"`
	NewCreatedUser bool      `json:"new_created_user"`
	SellerContacts []Contact `json:"seller_contacts,omitempty"`
}

// OTPResponse represents the response after issuing or resending a code.
// Code is populated only in debug degraded mode (SMS provider missing).
type OTPResponse struct {
	PhoneNumber string `json:"phone_number"`
	Purpose     string `json:"purpose"`
	ExpiresAt   int64  `json:"expires_at"`
	Delivered   bool   `json:"delivered"`
	Code        string `json:"code,omitempty"`
}
