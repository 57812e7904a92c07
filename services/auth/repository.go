package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/danisworo/jualin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/danisworo/jualin/services/auth UserRepo,OTPRepo,DeviceRepo

// UserRepo defines user persistence
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByPhone(ctx context.Context, phone string) (*models.User, error)
	GetUserByPhoneAndRole(ctx context.Context, phone, role string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// OTPRepo defines OTP challenge persistence. The mutating operations are
// single conditional statements so concurrent verify attempts for one
// phone can never produce lost updates.
type OTPRepo interface {
	IssueOTP(ctx context.Context, otp *models.OTP) error
	GetPendingOTP(ctx context.Context, phone, purpose string) (*models.OTP, error)
	RegisterFailedAttempt(ctx context.Context, id string, maxFailedAttempts int) (*models.OTP, error)
	MarkVerified(ctx context.Context, id string, at time.Time) (bool, error)
	MarkExpired(ctx context.Context, id string) error
}

// DeviceRepo defines the push device-token registry
type DeviceRepo interface {
	RegisterDeviceToken(ctx context.Context, userID uuid.UUID, token string) error
	DeviceTokens(ctx context.Context, userID uuid.UUID) ([]string, error)
	RemoveDeviceToken(ctx context.Context, userID uuid.UUID, token string) error
}
