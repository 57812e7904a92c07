package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/danisworo/jualin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/danisworo/jualin/services/auth InvitationGW,NotificationGW,SMSGW

// InvitationGW is the narrow invitation surface the auth flow needs. The
// contacts usecase satisfies it.
type InvitationGW interface {
	PendingInvitationByPhone(ctx context.Context, phone string) (*models.Invitation, error)
	InvitationByToken(ctx context.Context, token string) (*models.Invitation, error)
	UpdateInvitationStatusByID(ctx context.Context, invitationID uuid.UUID, status string, userID uuid.UUID) (*models.Invitation, error)
	AcceptedContactsForUser(ctx context.Context, userID uuid.UUID) ([]models.Contact, error)
}

// NotificationGW publishes best-effort push notification events
type NotificationGW interface {
	PublishPushNotification(ctx context.Context, event *models.PushNotificationEvent) error
}

// SMSGW dispatches OTP codes over SMS
type SMSGW interface {
	SendSMS(ctx context.Context, to, body string) error
	IsConfigured() bool
}
