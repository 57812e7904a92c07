package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/danisworo/jualin/internal/pkg/errors"
	"github.com/danisworo/jualin/internal/pkg/models"
)

func setupContactRepoTest(t *testing.T) (*ContactRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &ContactRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func contactRows(contacts ...*models.Contact) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "seller_id", "invited_user_id", "phone_number", "email",
		"full_name", "status", "created_at", "updated_at",
	})
	for _, c := range contacts {
		rows.AddRow(c.ID, c.SellerID, c.InvitedUserID, c.PhoneNumber, c.Email,
			c.FullName, c.Status, c.CreatedAt, c.UpdatedAt)
	}
	return rows
}

func TestCreateContact(t *testing.T) {
	repo, mock, cleanup := setupContactRepoTest(t)
	defer cleanup()

	phone := "+628123456789"

	t.Run("inserts with defaults", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO contacts").
			WillReturnResult(sqlmock.NewResult(0, 1))

		contact := &models.Contact{
			SellerID:    uuid.New(),
			FullName:    "Budi",
			PhoneNumber: &phone,
		}
		err := repo.CreateContact(context.Background(), contact)

		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, contact.ID)
		assert.Equal(t, models.ContactStatusNew, contact.Status)
	})

	t.Run("unique violation maps to the conflict code", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO contacts").
			WillReturnError(errors.New(`pq: duplicate key value violates unique constraint (SQLSTATE 23505)`))

		err := repo.CreateContact(context.Background(), &models.Contact{
			SellerID:    uuid.New(),
			FullName:    "Budi",
			PhoneNumber: &phone,
		})

		assert.Equal(t, apperrors.CodeContactAlreadyExists, apperrors.CodeOf(err))
	})
}

func TestGetContactByID(t *testing.T) {
	repo, mock, cleanup := setupContactRepoTest(t)
	defer cleanup()

	t.Run("found", func(t *testing.T) {
		contact := &models.Contact{
			ID:        uuid.New(),
			SellerID:  uuid.New(),
			FullName:  "Budi",
			Status:    models.ContactStatusNew,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		mock.ExpectQuery("SELECT (.+) FROM contacts").
			WithArgs(contact.ID).
			WillReturnRows(contactRows(contact))

		got, err := repo.GetContactByID(context.Background(), contact.ID)

		assert.NoError(t, err)
		assert.Equal(t, contact.ID, got.ID)
	})

	t.Run("not found maps to the domain code", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM contacts").
			WillReturnRows(contactRows())

		_, err := repo.GetContactByID(context.Background(), uuid.New())

		assert.Equal(t, apperrors.CodeContactNotFound, apperrors.CodeOf(err))
	})
}

func TestDeleteContact(t *testing.T) {
	repo, mock, cleanup := setupContactRepoTest(t)
	defer cleanup()

	contactID := uuid.New()

	t.Run("cascades invitations inside one transaction", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM contact_invitations").
			WithArgs(contactID).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec("DELETE FROM contacts").
			WithArgs(contactID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.DeleteContact(context.Background(), contactID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing contact rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM contact_invitations").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM contacts").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.DeleteContact(context.Background(), contactID)

		assert.Equal(t, apperrors.CodeContactNotFound, apperrors.CodeOf(err))
	})
}

func TestAcceptedContactsForUser(t *testing.T) {
	repo, mock, cleanup := setupContactRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	accepted := &models.Contact{
		ID:            uuid.New(),
		SellerID:      uuid.New(),
		InvitedUserID: &userID,
		FullName:      "Budi",
		Status:        models.ContactStatusAccepted,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	mock.ExpectQuery("SELECT (.+) FROM contacts").
		WithArgs(userID, models.ContactStatusAccepted).
		WillReturnRows(contactRows(accepted))

	got, err := repo.AcceptedContactsForUser(context.Background(), userID)

	assert.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.ContactStatusAccepted, got[0].Status)
}
