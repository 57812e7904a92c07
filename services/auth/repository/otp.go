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

const otpColumns = `id, phone_number, code, purpose, status, failed_attempts,
		resend_count, locked, lock_time, verified_at, expires_at, last_sent_at, created_at`

// IssueOTP persists a fresh pending challenge, first expiring any pending
// row for the same (phone, purpose). Done in one transaction so at most
// one pending challenge exists per key at any instant.
func (r *AuthRepo) IssueOTP(ctx context.Context, otp *models.OTP) error {
	otp.ID = uuid.New().String()
	now := time.Now()
	otp.CreatedAt = now
	otp.LastSentAt = now
	otp.Status = models.OTPStatusPending

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		UPDATE otp_verifications
		SET status = $1
		WHERE phone_number = $2 AND purpose = $3 AND status = $4
	`, models.OTPStatusExpired, otp.PhoneNumber, otp.Purpose, models.OTPStatusPending); err != nil {
		return fmt.Errorf("failed to expire previous otp: %w", err)
	}

	query := `
		INSERT INTO otp_verifications (id, phone_number, code, purpose, status,
			failed_attempts, resend_count, locked, expires_at, last_sent_at, created_at
		) VALUES (:id, :phone_number, :code, :purpose, :status,
			:failed_attempts, :resend_count, :locked, :expires_at, :last_sent_at, :created_at)
	`
	if _, err := tx.NamedExecContext(ctx, query, otp); err != nil {
		return fmt.Errorf("failed to insert otp: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetPendingOTP retrieves the live challenge for a (phone, purpose) key
func (r *AuthRepo) GetPendingOTP(ctx context.Context, phone, purpose string) (*models.OTP, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM otp_verifications
		WHERE phone_number = $1 AND purpose = $2 AND status = $3
		ORDER BY created_at DESC
		LIMIT 1
	`, otpColumns)

	var otp models.OTP
	err := r.db.GetContext(ctx, &otp, query, phone, purpose, models.OTPStatusPending)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.CodeNoActiveOTP, "no active otp for this phone")
		}
		return nil, fmt.Errorf("failed to get pending otp: %w", err)
	}

	return &otp, nil
}

// RegisterFailedAttempt increments the failure counter and flips the row
// to blocked once the threshold is reached, as one conditional UPDATE.
// Returns the row as it stands after the increment.
func (r *AuthRepo) RegisterFailedAttempt(ctx context.Context, id string, maxFailedAttempts int) (*models.OTP, error) {
	query := fmt.Sprintf(`
		UPDATE otp_verifications
		SET failed_attempts = failed_attempts + 1,
			locked = failed_attempts + 1 >= $2,
			status = CASE WHEN failed_attempts + 1 >= $2 THEN $3 ELSE status END,
			lock_time = CASE WHEN failed_attempts + 1 >= $2 THEN $4 ELSE lock_time END
		WHERE id = $1 AND status = $5
		RETURNING %s
	`, otpColumns)

	var otp models.OTP
	err := r.db.GetContext(ctx, &otp, query, id, maxFailedAttempts, models.OTPStatusBlocked, time.Now(), models.OTPStatusPending)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Row left pending between our read and this write; the
			// concurrent winner already finalized it.
			return nil, apperrors.New(apperrors.CodeNoActiveOTP, "no active otp for this phone")
		}
		return nil, fmt.Errorf("failed to register failed attempt: %w", err)
	}

	return &otp, nil
}

// MarkVerified finalizes a challenge as verified. The guard re-checks
// pending, unlocked and unexpired inside the statement, so two concurrent
// verifies can never both succeed.
func (r *AuthRepo) MarkVerified(ctx context.Context, id string, at time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE otp_verifications
		SET status = $1, verified_at = $2
		WHERE id = $3 AND status = $4 AND locked = false AND expires_at > $2
	`, models.OTPStatusVerified, at, id, models.OTPStatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to mark otp verified: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return rows == 1, nil
}

// MarkExpired finalizes a challenge as expired (lazy expiry on access)
func (r *AuthRepo) MarkExpired(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `
		UPDATE otp_verifications
		SET status = $1
		WHERE id = $2 AND status = $3
	`, models.OTPStatusExpired, id, models.OTPStatusPending); err != nil {
		return fmt.Errorf("failed to mark otp expired: %w", err)
	}

	return nil
}
