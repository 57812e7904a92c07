package errors

import (
	"errors"
	"fmt"
)

// Stable business-error codes. The HTTP layer maps these to transport
// statuses; the codes themselves never change once clients depend on them.
const (
	CodeNoActiveOTP             = "NO_ACTIVE_OTP"
	CodeInvalidOTP              = "INVALID_OTP"
	CodeOTPExpired              = "OTP_EXPIRED"
	CodeTooManyAttempts         = "TOO_MANY_ATTEMPTS"
	CodeResendCooldown          = "RESEND_COOLDOWN"
	CodeMaxResendReached        = "MAX_RESEND_ATTEMPTS_REACHED"
	CodeUserNotFound            = "USER_NOT_FOUND"
	CodePhoneAlreadyRegistered  = "PHONE_ALREADY_REGISTERED"
	CodeEmailAlreadyRegistered  = "EMAIL_ALREADY_REGISTERED"
	CodeForbiddenRole           = "FORBIDDEN_ROLE"
	CodeContactNotFound         = "CONTACT_NOT_FOUND"
	CodeContactAlreadyExists    = "CONTACT_ALREADY_EXISTS"
	CodeContactMissingRecipient = "CONTACT_MISSING_RECIPIENT"
	CodeInvalidStatus           = "INVALID_STATUS"
	CodeInvitationNotFound      = "INVITATION_NOT_FOUND"
	CodeInvitationProcessed     = "INVITATION_ALREADY_PROCESSED"
	CodeNoSuitableMethod        = "NO_SUITABLE_METHOD_AVAILABLE"
	CodeFailedToSendSMS         = "FAILED_TO_SEND_SMS"
	CodeFailedToSendEmail       = "FAILED_TO_SEND_EMAIL"
	CodeInvalidPhone            = "INVALID_PHONE_NUMBER"
	CodeInternal                = "INTERNAL_ERROR"
)

// AppError is the single structured error type domain code raises. It
// carries a stable code, a human-readable message, and the wrapped cause.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError with a code and message
func New(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap creates an AppError carrying a cause
func Wrap(code, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// CodeOf extracts the business code from an error chain, or CodeInternal
// when no AppError is present.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// Is reports whether the error chain carries the given business code
func Is(err error, code string) bool {
	return CodeOf(err) == code
}

// MessageOf returns the user-facing message from an error chain. Internal
// errors get a generic message so nothing leaks into responses.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}
