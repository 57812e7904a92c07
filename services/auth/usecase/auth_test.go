package usecase_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/danisworo/jualin/internal/pkg/errors"
	"github.com/danisworo/jualin/internal/pkg/models"
)

func newUUID(t *testing.T) uuid.UUID {
	t.Helper()
	return uuid.New()
}

func notFound() error {
	return apperrors.New(apperrors.CodeUserNotFound, "user not found")
}

func TestSignup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newAuthUC(ctrl, testConfig())
	ctx := context.Background()

	t.Run("creates a seller account", func(t *testing.T) {
		m.userRepo.EXPECT().GetUserByPhone(gomock.Any(), "+6281234567890").Return(nil, notFound())
		m.userRepo.EXPECT().GetUserByEmail(gomock.Any(), "toko@example.com").Return(nil, notFound())
		m.userRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *models.User) error {
				assert.Equal(t, models.RoleSeller, u.Role)
				assert.True(t, u.IsActive)
				assert.Equal(t, "+6281234567890", u.PhoneNumber)
				return nil
			})

		resp, err := uc.Signup(ctx, &models.SignupRequest{
			Username:    "toko-berkah",
			PhoneNumber: "081234567890",
			Email:       "toko@example.com",
			Role:        models.RoleSeller,
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.True(t, resp.NewCreatedUser)
	})

	t.Run("customers cannot sign up directly", func(t *testing.T) {
		_, err := uc.Signup(ctx, &models.SignupRequest{
			PhoneNumber: "+6281234567890",
			Role:        models.RoleCustomer,
		})

		assert.Equal(t, apperrors.CodeForbiddenRole, apperrors.CodeOf(err))
	})

	t.Run("duplicate phone is rejected", func(t *testing.T) {
		m.userRepo.EXPECT().GetUserByPhone(gomock.Any(), "+6281234567890").
			Return(&models.User{}, nil)

		_, err := uc.Signup(ctx, &models.SignupRequest{
			PhoneNumber: "+6281234567890",
			Role:        models.RoleSeller,
		})

		assert.Equal(t, apperrors.CodePhoneAlreadyRegistered, apperrors.CodeOf(err))
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		m.userRepo.EXPECT().GetUserByPhone(gomock.Any(), gomock.Any()).Return(nil, notFound())
		m.userRepo.EXPECT().GetUserByEmail(gomock.Any(), "taken@example.com").
			Return(&models.User{}, nil)

		_, err := uc.Signup(ctx, &models.SignupRequest{
			PhoneNumber: "+6281234567891",
			Email:       "taken@example.com",
			Role:        models.RoleSeller,
		})

		assert.Equal(t, apperrors.CodeEmailAlreadyRegistered, apperrors.CodeOf(err))
	})
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newAuthUC(ctrl, testConfig())
	ctx := context.Background()
	phone := "+6281234567890"

	t.Run("known seller logs in", func(t *testing.T) {
		user := &models.User{ID: newUUID(t), PhoneNumber: phone, Role: models.RoleSeller}
		m.userRepo.EXPECT().GetUserByPhoneAndRole(gomock.Any(), phone, models.RoleSeller).Return(user, nil)

		resp, err := uc.Login(ctx, &models.LoginRequest{PhoneNumber: phone, Role: models.RoleSeller})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.False(t, resp.NewCreatedUser)
		assert.Nil(t, resp.SellerContacts)
	})

	t.Run("unknown seller is rejected", func(t *testing.T) {
		m.userRepo.EXPECT().GetUserByPhoneAndRole(gomock.Any(), phone, models.RoleSeller).
			Return(nil, notFound())

		_, err := uc.Login(ctx, &models.LoginRequest{PhoneNumber: phone, Role: models.RoleSeller})

		assert.Equal(t, apperrors.CodeUserNotFound, apperrors.CodeOf(err))
	})

	t.Run("invited customer is created on first login", func(t *testing.T) {
		inv := &models.Invitation{ID: newUUID(t), Status: models.InvitationStatusPending}
		m.userRepo.EXPECT().GetUserByPhoneAndRole(gomock.Any(), phone, models.RoleCustomer).
			Return(nil, notFound())
		m.inviteGW.EXPECT().PendingInvitationByPhone(gomock.Any(), phone).Return(inv, nil)
		m.userRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *models.User) error {
				assert.Equal(t, models.RoleCustomer, u.Role)
				assert.Equal(t, phone, u.PhoneNumber)
				return nil
			})
		m.inviteGW.EXPECT().AcceptedContactsForUser(gomock.Any(), gomock.Any()).Return(nil, nil)

		resp, err := uc.Login(ctx, &models.LoginRequest{PhoneNumber: phone, Role: models.RoleCustomer})

		assert.NoError(t, err)
		assert.True(t, resp.NewCreatedUser)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("deep link token takes precedence over phone lookup", func(t *testing.T) {
		inv := &models.Invitation{ID: newUUID(t), Status: models.InvitationStatusPending}
		m.userRepo.EXPECT().GetUserByPhoneAndRole(gomock.Any(), phone, models.RoleCustomer).
			Return(nil, notFound())
		m.inviteGW.EXPECT().InvitationByToken(gomock.Any(), "deadbeef").Return(inv, nil)
		m.userRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil)
		m.inviteGW.EXPECT().AcceptedContactsForUser(gomock.Any(), gomock.Any()).Return(nil, nil)

		resp, err := uc.Login(ctx, &models.LoginRequest{
			PhoneNumber:   phone,
			Role:          models.RoleCustomer,
			DeepLinkToken: "deadbeef",
		})

		assert.NoError(t, err)
		assert.True(t, resp.NewCreatedUser)
	})

	t.Run("uninvited customer is rejected", func(t *testing.T) {
		m.userRepo.EXPECT().GetUserByPhoneAndRole(gomock.Any(), phone, models.RoleCustomer).
			Return(nil, notFound())
		m.inviteGW.EXPECT().PendingInvitationByPhone(gomock.Any(), phone).
			Return(nil, apperrors.New(apperrors.CodeInvitationNotFound, "no invitation"))

		_, err := uc.Login(ctx, &models.LoginRequest{PhoneNumber: phone, Role: models.RoleCustomer})

		assert.Equal(t, apperrors.CodeUserNotFound, apperrors.CodeOf(err))
	})

	t.Run("returning customer gets seller contacts", func(t *testing.T) {
		user := &models.User{ID: newUUID(t), PhoneNumber: phone, Role: models.RoleCustomer}
		sellerContacts := []models.Contact{{ID: newUUID(t), Status: models.ContactStatusAccepted}}
		m.userRepo.EXPECT().GetUserByPhoneAndRole(gomock.Any(), phone, models.RoleCustomer).Return(user, nil)
		m.inviteGW.EXPECT().AcceptedContactsForUser(gomock.Any(), user.ID).Return(sellerContacts, nil)

		resp, err := uc.Login(ctx, &models.LoginRequest{PhoneNumber: phone, Role: models.RoleCustomer})

		assert.NoError(t, err)
		assert.Len(t, resp.SellerContacts, 1)
	})

	t.Run("device token registration failure does not block login", func(t *testing.T) {
		user := &models.User{ID: newUUID(t), PhoneNumber: phone, Role: models.RoleSeller}
		m.userRepo.EXPECT().GetUserByPhoneAndRole(gomock.Any(), phone, models.RoleSeller).Return(user, nil)
		m.deviceRepo.EXPECT().RegisterDeviceToken(gomock.Any(), user.ID, "fcm-token").
			Return(assert.AnError)

		resp, err := uc.Login(ctx, &models.LoginRequest{
			PhoneNumber: phone,
			Role:        models.RoleSeller,
			DeviceToken: "fcm-token",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
	})
}
