package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/danisworo/jualin/internal/pkg/errors"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorBody represents an error response
type ErrorBody struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Error   string `json:"error"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return c.JSON(http.StatusBadRequest, ErrorBody{
		Success: false,
		Code:    "BAD_REQUEST",
		Error:   errorMessage,
	})
}

// statusByCode maps stable business codes to HTTP statuses. Codes missing
// from the map fall through to 500.
var statusByCode = map[string]int{
	apperrors.CodeNoActiveOTP:             http.StatusNotFound,
	apperrors.CodeInvalidOTP:              http.StatusUnauthorized,
	apperrors.CodeOTPExpired:              http.StatusUnauthorized,
	apperrors.CodeTooManyAttempts:         http.StatusTooManyRequests,
	apperrors.CodeResendCooldown:          http.StatusTooManyRequests,
	apperrors.CodeMaxResendReached:        http.StatusTooManyRequests,
	apperrors.CodeUserNotFound:            http.StatusNotFound,
	apperrors.CodePhoneAlreadyRegistered:  http.StatusConflict,
	apperrors.CodeEmailAlreadyRegistered:  http.StatusConflict,
	apperrors.CodeForbiddenRole:           http.StatusForbidden,
	apperrors.CodeContactNotFound:         http.StatusNotFound,
	apperrors.CodeContactAlreadyExists:    http.StatusConflict,
	apperrors.CodeContactMissingRecipient: http.StatusBadRequest,
	apperrors.CodeInvalidStatus:           http.StatusBadRequest,
	apperrors.CodeInvitationNotFound:      http.StatusNotFound,
	apperrors.CodeInvitationProcessed:     http.StatusConflict,
	apperrors.CodeNoSuitableMethod:        http.StatusUnprocessableEntity,
	apperrors.CodeFailedToSendSMS:         http.StatusBadGateway,
	apperrors.CodeFailedToSendEmail:       http.StatusBadGateway,
	apperrors.CodeInvalidPhone:            http.StatusBadRequest,
}

// DomainErrorResponse maps a business error to its transport status.
// Internal errors never leak details; clients get a generic message.
func DomainErrorResponse(c echo.Context, err error) error {
	code := apperrors.CodeOf(err)

	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}

	return c.JSON(status, ErrorBody{
		Success: false,
		Code:    code,
		Error:   apperrors.MessageOf(err),
	})
}
