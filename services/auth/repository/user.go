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

const userColumns = `id, username, phone_number, email, role, is_active, created_at, updated_at`

// CreateUser creates a new user in the database
func (r *AuthRepo) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.IsActive = true

	query := `
		INSERT INTO users (id, username, phone_number, email, role,
			is_active, created_at, updated_at
		) VALUES (:id, :username, :phone_number, :email, :role,
			:is_active, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByID retrieves a user by ID
func (r *AuthRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getUserByField(ctx, "id", id)
}

// GetUserByPhone retrieves a user by phone number regardless of role
func (r *AuthRepo) GetUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	return r.getUserByField(ctx, "phone_number", phone)
}

// GetUserByEmail retrieves a user by email
func (r *AuthRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getUserByField(ctx, "email", email)
}

// GetUserByPhoneAndRole retrieves a user by phone number and role
func (r *AuthRepo) GetUserByPhoneAndRole(ctx context.Context, phone, role string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE phone_number = $1 AND role = $2`, userColumns)

	var user models.User
	err := r.db.GetContext(ctx, &user, query, phone, role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.CodeUserNotFound, "user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// getUserByField is a helper function to get a user by a specific field
func (r *AuthRepo) getUserByField(ctx context.Context, field string, value interface{}) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s = $1`, userColumns, field)

	var user models.User
	err := r.db.GetContext(ctx, &user, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.CodeUserNotFound, "user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}
