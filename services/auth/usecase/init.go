package usecase

import (
	"github.com/danisworo/jualin/internal/pkg/models"
	"github.com/danisworo/jualin/services/auth"
)

// AuthUC implements the authentication usecase
type AuthUC struct {
	userRepo   auth.UserRepo
	otpRepo    auth.OTPRepo
	deviceRepo auth.DeviceRepo
	inviteGW   auth.InvitationGW
	notifyGW   auth.NotificationGW
	smsGW      auth.SMSGW
	cfg        *models.Config
}

// NewAuthUC creates a new auth usecase
func NewAuthUC(
	userRepo auth.UserRepo,
	otpRepo auth.OTPRepo,
	deviceRepo auth.DeviceRepo,
	inviteGW auth.InvitationGW,
	notifyGW auth.NotificationGW,
	smsGW auth.SMSGW,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		userRepo:   userRepo,
		otpRepo:    otpRepo,
		deviceRepo: deviceRepo,
		inviteGW:   inviteGW,
		notifyGW:   notifyGW,
		smsGW:      smsGW,
		cfg:        cfg,
	}
}
