package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	apperrors "github.com/danisworo/jualin/internal/pkg/errors"
	"github.com/danisworo/jualin/internal/pkg/logger"
	"github.com/danisworo/jualin/internal/pkg/models"
	"github.com/danisworo/jualin/internal/utils"
)

// CreateContact creates a new contact for a seller. Exactly one of phone
// number or email must be present.
func (uc *ContactUC) CreateContact(ctx context.Context, contact *models.Contact) error {
	hasPhone := contact.HasPhone()
	hasEmail := contact.HasEmail()

	if hasPhone == hasEmail {
		return apperrors.New(apperrors.CodeContactMissingRecipient, "exactly one of phone number or email is required")
	}

	if hasPhone {
		normalized, err := utils.NormalizePhone(*contact.PhoneNumber)
		if err != nil {
			return apperrors.Wrap(apperrors.CodeInvalidPhone, "invalid phone number", err)
		}
		contact.PhoneNumber = &normalized
	}

	contact.Status = models.ContactStatusNew

	if err := uc.contactRepo.CreateContact(ctx, contact); err != nil {
		return err
	}

	logger.Info("Contact created",
		logger.String("contact_id", contact.ID.String()),
		logger.String("seller_id", contact.SellerID.String()))

	return nil
}

// GetContact retrieves a contact, enforcing seller ownership
func (uc *ContactUC) GetContact(ctx context.Context, sellerID, contactID uuid.UUID) (*models.Contact, error) {
	contact, err := uc.ownedContact(ctx, sellerID, contactID)
	if err != nil {
		return nil, err
	}
	return contact, nil
}

// ListContacts lists all contacts owned by a seller
func (uc *ContactUC) ListContacts(ctx context.Context, sellerID uuid.UUID) ([]models.Contact, error) {
	result, err := uc.contactRepo.ListContactsBySeller(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return result, nil
}

// UpdateContact applies seller edits to a contact's reachable details
func (uc *ContactUC) UpdateContact(ctx context.Context, contact *models.Contact) error {
	existing, err := uc.ownedContact(ctx, contact.SellerID, contact.ID)
	if err != nil {
		return err
	}

	if contact.PhoneNumber == nil {
		contact.PhoneNumber = existing.PhoneNumber
	}
	if contact.Email == nil {
		contact.Email = existing.Email
	}
	if contact.FullName == "" {
		contact.FullName = existing.FullName
	}

	if !contact.HasPhone() && !contact.HasEmail() {
		return apperrors.New(apperrors.CodeContactMissingRecipient, "contact must keep a phone number or email")
	}

	if contact.HasPhone() {
		normalized, err := utils.NormalizePhone(*contact.PhoneNumber)
		if err != nil {
			return apperrors.Wrap(apperrors.CodeInvalidPhone, "invalid phone number", err)
		}
		contact.PhoneNumber = &normalized
	}

	return uc.contactRepo.UpdateContact(ctx, contact)
}

// DeleteContact removes a contact and its invitation history
func (uc *ContactUC) DeleteContact(ctx context.Context, sellerID, contactID uuid.UUID) error {
	if _, err := uc.ownedContact(ctx, sellerID, contactID); err != nil {
		return err
	}

	return uc.contactRepo.DeleteContact(ctx, contactID)
}

// AcceptedContactsForUser lists the accepted seller contacts referencing a
// registered user.
func (uc *ContactUC) AcceptedContactsForUser(ctx context.Context, userID uuid.UUID) ([]models.Contact, error) {
	return uc.contactRepo.AcceptedContactsForUser(ctx, userID)
}

// ownedContact fetches a contact and verifies the seller owns it. A
// contact belonging to another seller is reported as not found, never as
// forbidden, so ownership cannot be probed.
func (uc *ContactUC) ownedContact(ctx context.Context, sellerID, contactID uuid.UUID) (*models.Contact, error) {
	contact, err := uc.contactRepo.GetContactByID(ctx, contactID)
	if err != nil {
		return nil, err
	}

	if contact.SellerID != sellerID {
		return nil, apperrors.New(apperrors.CodeContactNotFound, "contact not found")
	}

	return contact, nil
}
