package usecase

import (
	"context"
	"fmt"

	apperrors "github.com/danisworo/jualin/internal/pkg/errors"
	"github.com/danisworo/jualin/internal/pkg/logger"
	"github.com/danisworo/jualin/internal/pkg/models"
)

// AcceptInvite records the invitee's decision on a pending invitation and
// notifies the inviting seller. The notification is best effort: the
// decision is already committed when it fires, and no failure in the push
// path ever surfaces to the invitee.
func (uc *AuthUC) AcceptInvite(ctx context.Context, req *models.AcceptInviteRequest) (*models.Invitation, error) {
	if req.InvitationStatus != models.InvitationStatusAccepted &&
		req.InvitationStatus != models.InvitationStatusRejected {
		return nil, apperrors.New(apperrors.CodeInvalidStatus,
			fmt.Sprintf("invitation can only be accepted or rejected, got: %s", req.InvitationStatus))
	}

	user, err := uc.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	inv, err := uc.inviteGW.UpdateInvitationStatusByID(ctx, req.InviteID, req.InvitationStatus, user.ID)
	if err != nil {
		return nil, err
	}

	logger.Info("invitation resolved",
		logger.String("invitation_id", inv.ID.String()),
		logger.String("status", inv.Status),
		logger.String("user_id", user.ID.String()))

	uc.notifySeller(ctx, inv, user)

	return inv, nil
}

// notifySeller pushes the decision to the seller's registered devices.
// Everything in here is swallowed; only a warning escapes.
func (uc *AuthUC) notifySeller(ctx context.Context, inv *models.Invitation, invitee *models.User) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("panic while notifying seller",
				logger.String("invitation_id", inv.ID.String()),
				logger.Any("panic", r))
		}
	}()

	tokens, err := uc.deviceRepo.DeviceTokens(ctx, inv.SellerID)
	if err != nil {
		logger.Warn("failed to load seller device tokens",
			logger.String("seller_id", inv.SellerID.String()),
			logger.Err(err))
		return
	}
	if len(tokens) == 0 {
		return
	}

	title := "Invitation accepted"
	body := fmt.Sprintf("%s accepted your invitation", invitee.PhoneNumber)
	if inv.Status == models.InvitationStatusRejected {
		title = "Invitation declined"
		body = fmt.Sprintf("%s declined your invitation", invitee.PhoneNumber)
	}

	event := &models.PushNotificationEvent{
		DeviceTokens: tokens,
		Title:        title,
		Body:         body,
		Data: map[string]string{
			"invitation_id": inv.ID.String(),
			"status":        inv.Status,
		},
	}
	if err := uc.notifyGW.PublishPushNotification(ctx, event); err != nil {
		logger.Warn("failed to publish seller notification",
			logger.String("seller_id", inv.SellerID.String()),
			logger.Err(err))
	}
}
