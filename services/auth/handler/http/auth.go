package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/danisworo/jualin/internal/pkg/models"
	"github.com/danisworo/jualin/internal/utils"
	"github.com/danisworo/jualin/services/auth"
)

// AuthHandler handles HTTP requests for authentication operations
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth HTTP handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// Signup handles direct registration for sellers and admins
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.PhoneNumber == "" {
		return utils.BadRequestResponse(c, "Phone number is required")
	}
	if req.Role == "" {
		return utils.BadRequestResponse(c, "Role is required")
	}

	resp, err := h.authUC.Signup(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Signup successful", resp)
}

// Login handles passwordless phone login
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.PhoneNumber == "" {
		return utils.BadRequestResponse(c, "Phone number is required")
	}
	if req.Role == "" {
		return utils.BadRequestResponse(c, "Role is required")
	}

	resp, err := h.authUC.Login(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// SendOTP issues a verification code for a phone number
func (h *AuthHandler) SendOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.PhoneNumber == "" {
		return utils.BadRequestResponse(c, "Phone number is required")
	}

	resp, err := h.authUC.SendOTP(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "OTP sent", resp)
}

// ResendOTP reissues the active verification code for a phone number
func (h *AuthHandler) ResendOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.PhoneNumber == "" {
		return utils.BadRequestResponse(c, "Phone number is required")
	}

	resp, err := h.authUC.ResendOTP(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "OTP resent", resp)
}

// VerifyOTP verifies a submitted code and establishes a session when the
// phone belongs to a registered user
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.PhoneNumber == "" {
		return utils.BadRequestResponse(c, "Phone number is required")
	}
	if req.Code == "" {
		return utils.BadRequestResponse(c, "Code is required")
	}

	resp, err := h.authUC.VerifyOTP(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "OTP verified", resp)
}

// AcceptInvite records the invitee's decision on a pending invitation.
// The acting user is taken from the session token, not the body.
func (h *AuthHandler) AcceptInvite(c echo.Context) error {
	var req models.AcceptInviteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.InvitationStatus == "" {
		return utils.BadRequestResponse(c, "Invitation status is required")
	}
	if req.InviteID == uuid.Nil {
		return utils.BadRequestResponse(c, "Invite ID is required")
	}

	if userIDStr, ok := c.Get("user_id").(string); ok {
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid user ID in token")
		}
		req.UserID = userID
	}
	if req.UserID == uuid.Nil {
		return utils.BadRequestResponse(c, "User ID is required")
	}

	inv, err := h.authUC.AcceptInvite(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Invitation updated", inv)
}
