package auth

import (
	"context"

	"github.com/danisworo/jualin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/danisworo/jualin/services/auth AuthUC

// AuthUC represents the authentication usecase interface
type AuthUC interface {
	Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)

	// OTP engine
	SendOTP(ctx context.Context, req *models.SendOTPRequest) (*models.OTPResponse, error)
	ResendOTP(ctx context.Context, req *models.SendOTPRequest) (*models.OTPResponse, error)
	VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) (*models.AuthResponse, error)

	// invitation acceptance
	AcceptInvite(ctx context.Context, req *models.AcceptInviteRequest) (*models.Invitation, error)
}
