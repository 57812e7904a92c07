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

func invitationRows(invitations ...*models.Invitation) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "seller_id", "contact_id", "invite_token", "method", "status",
		"invite_sent_at", "invite_cancelled_at", "invite_accepted_at", "created_at",
	})
	for _, i := range invitations {
		rows.AddRow(i.ID, i.SellerID, i.ContactID, i.InviteToken, i.Method, i.Status,
			i.InviteSentAt, i.InviteCancelledAt, i.InviteAcceptedAt, i.CreatedAt)
	}
	return rows
}

func pendingInvitation() *models.Invitation {
	return &models.Invitation{
		ID:           uuid.New(),
		SellerID:     uuid.New(),
		ContactID:    uuid.New(),
		InviteToken:  "deadbeef",
		Method:       models.InviteMethodSMS,
		Status:       models.InvitationStatusPending,
		InviteSentAt: time.Now(),
		CreatedAt:    time.Now(),
	}
}

func TestCreateInvitation(t *testing.T) {
	repo, mock, cleanup := setupContactRepoTest(t)
	defer cleanup()

	t.Run("inserts the invitation and flips the contact", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO contact_invitations").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE contacts").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		inv := &models.Invitation{
			SellerID:    uuid.New(),
			ContactID:   uuid.New(),
			InviteToken: "deadbeef",
			Method:      models.InviteMethodSMS,
		}
		err := repo.CreateInvitation(context.Background(), inv)

		assert.NoError(t, err)
		assert.Equal(t, models.InvitationStatusPending, inv.Status)
		assert.False(t, inv.InviteSentAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("aborts when the contact is no longer new", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO contact_invitations").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE contacts").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.CreateInvitation(context.Background(), &models.Invitation{
			SellerID:    uuid.New(),
			ContactID:   uuid.New(),
			InviteToken: "deadbeef",
			Method:      models.InviteMethodSMS,
		})

		assert.Equal(t, apperrors.CodeInvitationProcessed, apperrors.CodeOf(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCancelInvitationRepo(t *testing.T) {
	repo, mock, cleanup := setupContactRepoTest(t)
	defer cleanup()

	invitationID := uuid.New()
	contactID := uuid.New()

	t.Run("cancels and resets the contact together", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE contact_invitations").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE contacts").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.CancelInvitation(context.Background(), invitationID, contactID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already processed invitation aborts the transaction", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE contact_invitations").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.CancelInvitation(context.Background(), invitationID, contactID)

		assert.Equal(t, apperrors.CodeInvitationProcessed, apperrors.CodeOf(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFinalizeInvitation(t *testing.T) {
	repo, mock, cleanup := setupContactRepoTest(t)
	defer cleanup()

	userID := uuid.New()

	t.Run("acceptance updates invitation and contact in one transaction", func(t *testing.T) {
		inv := pendingInvitation()
		mock.ExpectQuery("SELECT (.+) FROM contact_invitations").
			WithArgs(inv.ID).
			WillReturnRows(invitationRows(inv))
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE contact_invitations").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE contacts").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.FinalizeInvitation(context.Background(), inv.ID, models.InvitationStatusAccepted, userID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("double resolution is rejected", func(t *testing.T) {
		inv := pendingInvitation()
		mock.ExpectQuery("SELECT (.+) FROM contact_invitations").
			WithArgs(inv.ID).
			WillReturnRows(invitationRows(inv))
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE contact_invitations").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.FinalizeInvitation(context.Background(), inv.ID, models.InvitationStatusRejected, userID)

		assert.Equal(t, apperrors.CodeInvitationProcessed, apperrors.CodeOf(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetPendingInvitationByPhone(t *testing.T) {
	repo, mock, cleanup := setupContactRepoTest(t)
	defer cleanup()

	t.Run("joins through the contact phone", func(t *testing.T) {
		inv := pendingInvitation()
		mock.ExpectQuery("SELECT (.+) FROM contact_invitations").
			WithArgs("+628123456789", models.InvitationStatusPending).
			WillReturnRows(invitationRows(inv))

		got, err := repo.GetPendingInvitationByPhone(context.Background(), "+628123456789")

		assert.NoError(t, err)
		assert.Equal(t, inv.ID, got.ID)
	})

	t.Run("no invitation maps to the domain code", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM contact_invitations").
			WillReturnRows(invitationRows())

		_, err := repo.GetPendingInvitationByPhone(context.Background(), "+628000000000")

		assert.Equal(t, apperrors.CodeInvitationNotFound, apperrors.CodeOf(err))
	})
}
