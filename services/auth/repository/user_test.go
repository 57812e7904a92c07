package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/danisworo/jualin/internal/pkg/errors"
	"github.com/danisworo/jualin/internal/pkg/models"
)

func userRows(user *models.User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "username", "phone_number", "email", "role", "is_active", "created_at", "updated_at",
	}).AddRow(
		user.ID, user.Username, user.PhoneNumber, user.Email, user.Role,
		user.IsActive, user.CreatedAt, user.UpdatedAt,
	)
}

func TestCreateUser(t *testing.T) {
	repo, mock, cleanup := setupAuthRepoTest(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(0, 1))

	user := &models.User{
		Username:    "toko-berkah",
		PhoneNumber: "+628123456789",
		Role:        models.RoleSeller,
	}
	err := repo.CreateUser(context.Background(), user)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.True(t, user.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByPhone(t *testing.T) {
	repo, mock, cleanup := setupAuthRepoTest(t)
	defer cleanup()

	t.Run("found", func(t *testing.T) {
		user := &models.User{
			ID:          uuid.New(),
			PhoneNumber: "+628123456789",
			Role:        models.RoleSeller,
			IsActive:    true,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		mock.ExpectQuery("SELECT (.+) FROM users").
			WithArgs("+628123456789").
			WillReturnRows(userRows(user))

		got, err := repo.GetUserByPhone(context.Background(), "+628123456789")

		assert.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("not found maps to the domain code", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetUserByPhone(context.Background(), "+628000000000")

		assert.Equal(t, apperrors.CodeUserNotFound, apperrors.CodeOf(err))
	})
}

func TestGetUserByPhoneAndRole(t *testing.T) {
	repo, mock, cleanup := setupAuthRepoTest(t)
	defer cleanup()

	t.Run("role scopes the lookup", func(t *testing.T) {
		user := &models.User{
			ID:          uuid.New(),
			PhoneNumber: "+628123456789",
			Role:        models.RoleCustomer,
			IsActive:    true,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		mock.ExpectQuery("SELECT (.+) FROM users").
			WithArgs("+628123456789", models.RoleCustomer).
			WillReturnRows(userRows(user))

		got, err := repo.GetUserByPhoneAndRole(context.Background(), "+628123456789", models.RoleCustomer)

		assert.NoError(t, err)
		assert.Equal(t, models.RoleCustomer, got.Role)
	})

	t.Run("same phone in another role is not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users").
			WithArgs("+628123456789", models.RoleSeller).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetUserByPhoneAndRole(context.Background(), "+628123456789", models.RoleSeller)

		assert.Equal(t, apperrors.CodeUserNotFound, apperrors.CodeOf(err))
	})
}
