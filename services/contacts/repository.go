package contacts

import (
	"context"

	"github.com/google/uuid"

	"github.com/danisworo/jualin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/danisworo/jualin/services/contacts ContactRepo,InvitationRepo

// ContactRepo defines persistence for seller contacts
type ContactRepo interface {
	CreateContact(ctx context.Context, contact *models.Contact) error
	GetContactByID(ctx context.Context, id uuid.UUID) (*models.Contact, error)
	ListContactsBySeller(ctx context.Context, sellerID uuid.UUID) ([]models.Contact, error)
	UpdateContact(ctx context.Context, contact *models.Contact) error
	DeleteContact(ctx context.Context, id uuid.UUID) error
	AcceptedContactsForUser(ctx context.Context, userID uuid.UUID) ([]models.Contact, error)
}

// InvitationRepo defines persistence for contact invitations. Writes that
// touch both the invitation and its contact run in a single transaction.
type InvitationRepo interface {
	CreateInvitation(ctx context.Context, invitation *models.Invitation) error
	GetInvitationByID(ctx context.Context, id uuid.UUID) (*models.Invitation, error)
	GetInvitationByToken(ctx context.Context, token string) (*models.Invitation, error)
	GetPendingInvitationByPhone(ctx context.Context, phone string) (*models.Invitation, error)
	GetPendingInvitationByContact(ctx context.Context, contactID uuid.UUID) (*models.Invitation, error)
	CancelInvitation(ctx context.Context, invitationID, contactID uuid.UUID) error
	FinalizeInvitation(ctx context.Context, invitationID uuid.UUID, status string, userID uuid.UUID) error
}
