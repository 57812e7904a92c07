package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/danisworo/jualin/internal/pkg/errors"
	"github.com/danisworo/jualin/internal/pkg/models"
)

const invitationColumns = `id, seller_id, contact_id, invite_token, method, status,
		invite_sent_at, invite_cancelled_at, invite_accepted_at, created_at`

// CreateInvitation persists a new pending invitation and flips its contact
// to invited, in one transaction. The invite_token unique constraint
// rejects the (negligible-probability) duplicate token.
func (r *ContactRepo) CreateInvitation(ctx context.Context, invitation *models.Invitation) error {
	invitation.ID = uuid.New()
	now := time.Now()
	invitation.CreatedAt = now
	invitation.InviteSentAt = now
	invitation.Status = models.InvitationStatusPending

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO contact_invitations (id, seller_id, contact_id, invite_token,
			method, status, invite_sent_at, created_at
		) VALUES (:id, :seller_id, :contact_id, :invite_token,
			:method, :status, :invite_sent_at, :created_at)
	`
	if _, err := tx.NamedExecContext(ctx, query, invitation); err != nil {
		return fmt.Errorf("failed to insert invitation: %w", err)
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE contacts
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
	`, models.ContactStatusInvited, now, invitation.ContactID, models.ContactStatusNew)
	if err != nil {
		return fmt.Errorf("failed to update contact status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		// Contact moved out of new concurrently; abort rather than leave a
		// second pending invitation behind.
		return apperrors.New(apperrors.CodeInvitationProcessed, "contact already has an active invitation")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetInvitationByID retrieves an invitation by ID
func (r *ContactRepo) GetInvitationByID(ctx context.Context, id uuid.UUID) (*models.Invitation, error) {
	query := fmt.Sprintf(`SELECT %s FROM contact_invitations WHERE id = $1`, invitationColumns)

	var invitation models.Invitation
	err := r.db.GetContext(ctx, &invitation, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.CodeInvitationNotFound, "invitation not found")
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	return &invitation, nil
}

// GetInvitationByToken retrieves an invitation by its deep-link token
func (r *ContactRepo) GetInvitationByToken(ctx context.Context, token string) (*models.Invitation, error) {
	query := fmt.Sprintf(`SELECT %s FROM contact_invitations WHERE invite_token = $1`, invitationColumns)

	var invitation models.Invitation
	err := r.db.GetContext(ctx, &invitation, query, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.CodeInvitationNotFound, "invitation not found")
		}
		return nil, fmt.Errorf("failed to get invitation by token: %w", err)
	}

	return &invitation, nil
}

// GetPendingInvitationByPhone finds the most recent pending invitation
// whose contact carries the given phone number.
func (r *ContactRepo) GetPendingInvitationByPhone(ctx context.Context, phone string) (*models.Invitation, error) {
	query := `
		SELECT i.id, i.seller_id, i.contact_id, i.invite_token, i.method, i.status,
			i.invite_sent_at, i.invite_cancelled_at, i.invite_accepted_at, i.created_at
		FROM contact_invitations i
		JOIN contacts c ON c.id = i.contact_id
		WHERE c.phone_number = $1 AND i.status = $2
		ORDER BY i.invite_sent_at DESC
		LIMIT 1
	`

	var invitation models.Invitation
	err := r.db.GetContext(ctx, &invitation, query, phone, models.InvitationStatusPending)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.CodeInvitationNotFound, "invitation not found")
		}
		return nil, fmt.Errorf("failed to get pending invitation by phone: %w", err)
	}

	return &invitation, nil
}

// GetPendingInvitationByContact finds the pending invitation for a contact
func (r *ContactRepo) GetPendingInvitationByContact(ctx context.Context, contactID uuid.UUID) (*models.Invitation, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM contact_invitations
		WHERE contact_id = $1 AND status = $2
		ORDER BY invite_sent_at DESC
		LIMIT 1
	`, invitationColumns)

	var invitation models.Invitation
	err := r.db.GetContext(ctx, &invitation, query, contactID, models.InvitationStatusPending)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.CodeInvitationNotFound, "invitation not found")
		}
		return nil, fmt.Errorf("failed to get pending invitation by contact: %w", err)
	}

	return &invitation, nil
}

// CancelInvitation cancels a pending invitation and returns its contact to
// new with the invited user cleared, in one transaction. The contact reset
// is guarded on its current status so a concurrently accepted contact is
// never knocked back to new.
func (r *ContactRepo) CancelInvitation(ctx context.Context, invitationID, contactID uuid.UUID) error {
	now := time.Now()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE contact_invitations
		SET status = $1, invite_cancelled_at = $2
		WHERE id = $3 AND status = $4
	`, models.InvitationStatusCancelled, now, invitationID, models.InvitationStatusPending)
	if err != nil {
		return fmt.Errorf("failed to cancel invitation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return apperrors.New(apperrors.CodeInvitationProcessed, "invitation already processed")
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE contacts
		SET status = $1, invited_user_id = NULL, updated_at = $2
		WHERE id = $3 AND status = $4
	`, models.ContactStatusNew, now, contactID, models.ContactStatusInvited); err != nil {
		return fmt.Errorf("failed to reset contact status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// FinalizeInvitation resolves a pending invitation to accepted or rejected
// and updates the contact to match, in one transaction. The invitation and
// its contact are never left disagreeing about the outcome.
func (r *ContactRepo) FinalizeInvitation(ctx context.Context, invitationID uuid.UUID, status string, userID uuid.UUID) error {
	invitation, err := r.GetInvitationByID(ctx, invitationID)
	if err != nil {
		return err
	}

	now := time.Now()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var res sql.Result
	if status == models.InvitationStatusAccepted {
		res, err = tx.ExecContext(ctx, `
			UPDATE contact_invitations
			SET status = $1, invite_accepted_at = $2
			WHERE id = $3 AND status = $4
		`, status, now, invitationID, models.InvitationStatusPending)
	} else {
		res, err = tx.ExecContext(ctx, `
			UPDATE contact_invitations
			SET status = $1
			WHERE id = $2 AND status = $3
		`, status, invitationID, models.InvitationStatusPending)
	}
	if err != nil {
		return fmt.Errorf("failed to update invitation status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return apperrors.New(apperrors.CodeInvitationProcessed, "invitation already processed")
	}

	if status == models.InvitationStatusAccepted {
		_, err = tx.ExecContext(ctx, `
			UPDATE contacts
			SET status = $1, invited_user_id = $2, updated_at = $3
			WHERE id = $4
		`, models.ContactStatusAccepted, userID, now, invitation.ContactID)
	} else {
		_, err = tx.ExecContext(ctx, `
			UPDATE contacts
			SET status = $1, updated_at = $2
			WHERE id = $3
		`, models.ContactStatusRejected, now, invitation.ContactID)
	}
	if err != nil {
		return fmt.Errorf("failed to update contact status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
