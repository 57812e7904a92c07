package contacts

import (
	"context"

	"github.com/google/uuid"

	"github.com/danisworo/jualin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/danisworo/jualin/services/contacts ContactUC

// ContactUC represents the contact and invitation lifecycle interface
type ContactUC interface {
	// contact management
	CreateContact(ctx context.Context, contact *models.Contact) error
	GetContact(ctx context.Context, sellerID, contactID uuid.UUID) (*models.Contact, error)
	ListContacts(ctx context.Context, sellerID uuid.UUID) ([]models.Contact, error)
	UpdateContact(ctx context.Context, contact *models.Contact) error
	DeleteContact(ctx context.Context, sellerID, contactID uuid.UUID) error

	// invitation lifecycle
	UpdateContactStatus(ctx context.Context, sellerID, contactID uuid.UUID, newStatus string) (*models.Contact, error)
	CancelInvitation(ctx context.Context, sellerID, contactID uuid.UUID) error
	UpdateInvitationStatusByID(ctx context.Context, invitationID uuid.UUID, status string, userID uuid.UUID) (*models.Invitation, error)

	// lookups used by the auth flow
	PendingInvitationByPhone(ctx context.Context, phone string) (*models.Invitation, error)
	InvitationByToken(ctx context.Context, token string) (*models.Invitation, error)
	AcceptedContactsForUser(ctx context.Context, userID uuid.UUID) ([]models.Contact, error)
}
