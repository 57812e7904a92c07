package usecase_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/danisworo/jualin/internal/pkg/errors"
	"github.com/danisworo/jualin/internal/pkg/models"
	"github.com/danisworo/jualin/services/contacts/mocks"
	"github.com/danisworo/jualin/services/contacts/usecase"
)

func strPtr(s string) *string { return &s }

func testConfig() *models.Config {
	cfg := &models.Config{}
	cfg.App.Name = "jualin"
	cfg.Invite.BaseURL = "https://jualin.app/invite"
	cfg.Invite.TokenLength = 32
	return cfg
}

type contactMocks struct {
	contactRepo *mocks.MockContactRepo
	inviteRepo  *mocks.MockInvitationRepo
	smsGW       *mocks.MockSMSGW
	emailGW     *mocks.MockEmailGW
}

func newContactUC(ctrl *gomock.Controller, cfg *models.Config) (*usecase.ContactUC, *contactMocks) {
	m := &contactMocks{
		contactRepo: mocks.NewMockContactRepo(ctrl),
		inviteRepo:  mocks.NewMockInvitationRepo(ctrl),
		smsGW:       mocks.NewMockSMSGW(ctrl),
		emailGW:     mocks.NewMockEmailGW(ctrl),
	}
	uc := usecase.NewContactUC(m.contactRepo, m.inviteRepo, m.smsGW, m.emailGW, cfg)
	return uc, m
}

func TestCreateContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newContactUC(ctrl, testConfig())
	ctx := context.Background()
	sellerID := uuid.New()

	t.Run("phone contact is normalized and starts at new", func(t *testing.T) {
		m.contactRepo.EXPECT().CreateContact(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *models.Contact) error {
				assert.Equal(t, "+6281234567890", *c.PhoneNumber)
				assert.Equal(t, models.ContactStatusNew, c.Status)
				return nil
			})

		err := uc.CreateContact(ctx, &models.Contact{
			SellerID:    sellerID,
			FullName:    "Budi",
			PhoneNumber: strPtr("0812-3456-7890"),
		})

		assert.NoError(t, err)
	})

	t.Run("email-only contact is accepted", func(t *testing.T) {
		m.contactRepo.EXPECT().CreateContact(gomock.Any(), gomock.Any()).Return(nil)

		err := uc.CreateContact(ctx, &models.Contact{
			SellerID: sellerID,
			FullName: "Sari",
			Email:    strPtr("sari@example.com"),
		})

		assert.NoError(t, err)
	})

	t.Run("both phone and email is rejected", func(t *testing.T) {
		err := uc.CreateContact(ctx, &models.Contact{
			SellerID:    sellerID,
			FullName:    "Budi",
			PhoneNumber: strPtr("+6281234567890"),
			Email:       strPtr("budi@example.com"),
		})

		assert.Equal(t, apperrors.CodeContactMissingRecipient, apperrors.CodeOf(err))
	})

	t.Run("neither phone nor email is rejected", func(t *testing.T) {
		err := uc.CreateContact(ctx, &models.Contact{SellerID: sellerID, FullName: "Budi"})

		assert.Equal(t, apperrors.CodeContactMissingRecipient, apperrors.CodeOf(err))
	})
}

func TestContactOwnership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newContactUC(ctrl, testConfig())
	ctx := context.Background()

	owner := uuid.New()
	stranger := uuid.New()
	contactID := uuid.New()
	contact := &models.Contact{ID: contactID, SellerID: owner, FullName: "Budi", Status: models.ContactStatusNew}

	t.Run("owner reads their contact", func(t *testing.T) {
		m.contactRepo.EXPECT().GetContactByID(gomock.Any(), contactID).Return(contact, nil)

		got, err := uc.GetContact(ctx, owner, contactID)

		assert.NoError(t, err)
		assert.Equal(t, contactID, got.ID)
	})

	t.Run("another seller sees not found", func(t *testing.T) {
		m.contactRepo.EXPECT().GetContactByID(gomock.Any(), contactID).Return(contact, nil)

		_, err := uc.GetContact(ctx, stranger, contactID)

		assert.Equal(t, apperrors.CodeContactNotFound, apperrors.CodeOf(err))
	})

	t.Run("delete checks ownership first", func(t *testing.T) {
		m.contactRepo.EXPECT().GetContactByID(gomock.Any(), contactID).Return(contact, nil)

		err := uc.DeleteContact(ctx, stranger, contactID)

		assert.Equal(t, apperrors.CodeContactNotFound, apperrors.CodeOf(err))
	})
}

func TestUpdateContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newContactUC(ctrl, testConfig())
	ctx := context.Background()

	sellerID := uuid.New()
	contactID := uuid.New()
	existing := &models.Contact{
		ID:          contactID,
		SellerID:    sellerID,
		FullName:    "Budi",
		PhoneNumber: strPtr("+6281234567890"),
		Status:      models.ContactStatusNew,
	}

	t.Run("missing fields fall back to the stored values", func(t *testing.T) {
		m.contactRepo.EXPECT().GetContactByID(gomock.Any(), contactID).Return(existing, nil)
		m.contactRepo.EXPECT().UpdateContact(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *models.Contact) error {
				assert.Equal(t, "Budi Santoso", c.FullName)
				assert.Equal(t, "+6281234567890", *c.PhoneNumber)
				return nil
			})

		err := uc.UpdateContact(ctx, &models.Contact{
			ID:       contactID,
			SellerID: sellerID,
			FullName: "Budi Santoso",
		})

		assert.NoError(t, err)
	})
}
