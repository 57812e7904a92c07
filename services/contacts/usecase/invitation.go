package usecase

import (
	"context"

	"github.com/google/uuid"

	apperrors "github.com/danisworo/jualin/internal/pkg/errors"
	"github.com/danisworo/jualin/internal/pkg/logger"
	"github.com/danisworo/jualin/internal/pkg/models"
	"github.com/danisworo/jualin/internal/utils"
)

// UpdateContactStatus drives the contact state machine. The only
// seller-initiated transition is new → invited, which creates and delivers
// an invitation. Accepted and rejected are reached through the invitee
// flow, never directly.
func (uc *ContactUC) UpdateContactStatus(ctx context.Context, sellerID, contactID uuid.UUID, newStatus string) (*models.Contact, error) {
	contact, err := uc.ownedContact(ctx, sellerID, contactID)
	if err != nil {
		return nil, err
	}

	if newStatus != models.ContactStatusInvited {
		return nil, apperrors.New(apperrors.CodeInvalidStatus, "only the invited status can be set directly")
	}
	if contact.Status != models.ContactStatusNew {
		return nil, apperrors.New(apperrors.CodeInvalidStatus, "contact is not eligible for invitation")
	}

	invitation, err := uc.createInvitation(ctx, contact)
	if err != nil {
		return nil, err
	}

	logger.Info("Invitation created",
		logger.String("invitation_id", invitation.ID.String()),
		logger.String("contact_id", contact.ID.String()),
		logger.String("method", invitation.Method))

	return uc.contactRepo.GetContactByID(ctx, contactID)
}

// createInvitation selects a delivery strategy, sends the invite, then
// persists the pending invitation together with the contact transition.
// Delivery runs first: an invitation is never recorded as sent when the
// provider refused it. The residual window (delivered but commit failed)
// leaves the contact at new, so the seller can simply re-invite.
func (uc *ContactUC) createInvitation(ctx context.Context, contact *models.Contact) (*models.Invitation, error) {
	strategy, err := uc.selectStrategy(contact)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateInviteToken(uc.cfg.Invite.TokenLength)
	if err != nil {
		return nil, err
	}

	if err := strategy.Send(ctx, contact, token); err != nil {
		return nil, err
	}

	invitation := &models.Invitation{
		SellerID:    contact.SellerID,
		ContactID:   contact.ID,
		InviteToken: token,
		Method:      strategy.Channel(),
	}

	if err := uc.inviteRepo.CreateInvitation(ctx, invitation); err != nil {
		return nil, err
	}

	return invitation, nil
}

// CancelInvitation cancels the pending invitation of a contact and returns
// the contact to new.
func (uc *ContactUC) CancelInvitation(ctx context.Context, sellerID, contactID uuid.UUID) error {
	contact, err := uc.ownedContact(ctx, sellerID, contactID)
	if err != nil {
		return err
	}

	invitation, err := uc.inviteRepo.GetPendingInvitationByContact(ctx, contact.ID)
	if err != nil {
		return err
	}

	if err := uc.inviteRepo.CancelInvitation(ctx, invitation.ID, contact.ID); err != nil {
		return err
	}

	logger.Info("Invitation cancelled",
		logger.String("invitation_id", invitation.ID.String()),
		logger.String("contact_id", contact.ID.String()))

	return nil
}

// UpdateInvitationStatusByID resolves a pending invitation to accepted or
// rejected and returns the refreshed record.
func (uc *ContactUC) UpdateInvitationStatusByID(ctx context.Context, invitationID uuid.UUID, status string, userID uuid.UUID) (*models.Invitation, error) {
	if status != models.InvitationStatusAccepted && status != models.InvitationStatusRejected {
		return nil, apperrors.New(apperrors.CodeInvalidStatus, "invitation can only be accepted or rejected")
	}

	invitation, err := uc.inviteRepo.GetInvitationByID(ctx, invitationID)
	if err != nil {
		return nil, err
	}
	if invitation.Status != models.InvitationStatusPending {
		return nil, apperrors.New(apperrors.CodeInvitationProcessed, "invitation already processed")
	}

	if err := uc.inviteRepo.FinalizeInvitation(ctx, invitationID, status, userID); err != nil {
		return nil, err
	}

	return uc.inviteRepo.GetInvitationByID(ctx, invitationID)
}

// PendingInvitationByPhone finds the pending invitation gating a phone
// number's just-in-time registration.
func (uc *ContactUC) PendingInvitationByPhone(ctx context.Context, phone string) (*models.Invitation, error) {
	return uc.inviteRepo.GetPendingInvitationByPhone(ctx, phone)
}

// InvitationByToken resolves a deep-link token to its invitation
func (uc *ContactUC) InvitationByToken(ctx context.Context, token string) (*models.Invitation, error) {
	return uc.inviteRepo.GetInvitationByToken(ctx, token)
}
