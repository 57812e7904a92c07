package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/danisworo/jualin/internal/pkg/errors"
	"github.com/danisworo/jualin/internal/pkg/models"
)

// CreateContact creates a new contact owned by a seller. The per-seller
// uniqueness of phone/email is backed by partial unique indexes; a
// violation surfaces as a conflict error.
func (r *ContactRepo) CreateContact(ctx context.Context, contact *models.Contact) error {
	contact.ID = uuid.New()
	now := time.Now()
	contact.CreatedAt = now
	contact.UpdatedAt = now
	if contact.Status == "" {
		contact.Status = models.ContactStatusNew
	}

	query := `
		INSERT INTO contacts (id, seller_id, invited_user_id, phone_number, email,
			full_name, status, created_at, updated_at
		) VALUES (:id, :seller_id, :invited_user_id, :phone_number, :email,
			:full_name, :status, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, contact)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.Wrap(apperrors.CodeContactAlreadyExists, "contact already exists for this seller", err)
		}
		return fmt.Errorf("failed to insert contact: %w", err)
	}

	return nil
}

// GetContactByID retrieves a contact by ID
func (r *ContactRepo) GetContactByID(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	query := `
		SELECT id, seller_id, invited_user_id, phone_number, email,
			full_name, status, created_at, updated_at
		FROM contacts
		WHERE id = $1
	`

	var contact models.Contact
	err := r.db.GetContext(ctx, &contact, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.CodeContactNotFound, "contact not found")
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	return &contact, nil
}

// ListContactsBySeller retrieves all contacts owned by a seller
func (r *ContactRepo) ListContactsBySeller(ctx context.Context, sellerID uuid.UUID) ([]models.Contact, error) {
	query := `
		SELECT id, seller_id, invited_user_id, phone_number, email,
			full_name, status, created_at, updated_at
		FROM contacts
		WHERE seller_id = $1
		ORDER BY created_at DESC
	`

	var result []models.Contact
	if err := r.db.SelectContext(ctx, &result, query, sellerID); err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	return result, nil
}

// UpdateContact updates the editable fields of a contact
func (r *ContactRepo) UpdateContact(ctx context.Context, contact *models.Contact) error {
	contact.UpdatedAt = time.Now()

	query := `
		UPDATE contacts
		SET phone_number = :phone_number, email = :email, full_name = :full_name,
			updated_at = :updated_at
		WHERE id = :id
	`
	res, err := r.db.NamedExecContext(ctx, query, contact)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.Wrap(apperrors.CodeContactAlreadyExists, "contact already exists for this seller", err)
		}
		return fmt.Errorf("failed to update contact: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return apperrors.New(apperrors.CodeContactNotFound, "contact not found")
	}

	return nil
}

// DeleteContact removes a contact and cascades its invitations
func (r *ContactRepo) DeleteContact(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM contact_invitations WHERE contact_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete contact invitations: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return apperrors.New(apperrors.CodeContactNotFound, "contact not found")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// AcceptedContactsForUser lists the accepted contacts that reference a
// registered user, one per inviting seller.
func (r *ContactRepo) AcceptedContactsForUser(ctx context.Context, userID uuid.UUID) ([]models.Contact, error) {
	query := `
		SELECT id, seller_id, invited_user_id, phone_number, email,
			full_name, status, created_at, updated_at
		FROM contacts
		WHERE invited_user_id = $1 AND status = $2
		ORDER BY updated_at DESC
	`

	var result []models.Contact
	if err := r.db.SelectContext(ctx, &result, query, userID, models.ContactStatusAccepted); err != nil {
		return nil, fmt.Errorf("failed to list accepted contacts: %w", err)
	}

	return result, nil
}

// isUniqueViolation reports whether the error is a postgres unique
// constraint violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
