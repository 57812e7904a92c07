package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/danisworo/jualin/internal/pkg/errors"
	"github.com/danisworo/jualin/internal/pkg/models"
	"github.com/danisworo/jualin/services/auth/mocks"
)

func newAuthContext(t *testing.T, method, path, body string) (*mocks.MockAuthUC, *AuthHandler, echo.Context, *httptest.ResponseRecorder, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return mockUC, handler, c, rec, ctrl
}

func TestSendOTPHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockUC, handler, c, rec, ctrl := newAuthContext(t, http.MethodPost, "/auth/otp/send",
			`{"phone_number": "+6281234567890"}`)
		defer ctrl.Finish()

		mockUC.EXPECT().SendOTP(gomock.Any(), gomock.Any()).
			Return(&models.OTPResponse{PhoneNumber: "+6281234567890", Delivered: true}, nil)

		err := handler.SendOTP(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var response map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, true, response["success"])
	})

	t.Run("missing phone number", func(t *testing.T) {
		_, handler, c, rec, ctrl := newAuthContext(t, http.MethodPost, "/auth/otp/send", `{}`)
		defer ctrl.Finish()

		err := handler.SendOTP(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("cooldown maps to 429", func(t *testing.T) {
		mockUC, handler, c, rec, ctrl := newAuthContext(t, http.MethodPost, "/auth/otp/send",
			`{"phone_number": "+6281234567890"}`)
		defer ctrl.Finish()

		mockUC.EXPECT().SendOTP(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.New(apperrors.CodeResendCooldown, "wait"))

		err := handler.SendOTP(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)

		var response map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, apperrors.CodeResendCooldown, response["code"])
	})
}

func TestVerifyOTPHandler(t *testing.T) {
	t.Run("success returns the session payload", func(t *testing.T) {
		mockUC, handler, c, rec, ctrl := newAuthContext(t, http.MethodPost, "/auth/otp/verify",
			`{"phone_number": "+6281234567890", "code": "123456"}`)
		defer ctrl.Finish()

		mockUC.EXPECT().VerifyOTP(gomock.Any(), gomock.Any()).
			Return(&models.AuthResponse{Token: "jwt-token", Role: models.RoleSeller}, nil)

		err := handler.VerifyOTP(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong code maps to 401", func(t *testing.T) {
		mockUC, handler, c, rec, ctrl := newAuthContext(t, http.MethodPost, "/auth/otp/verify",
			`{"phone_number": "+6281234567890", "code": "000000"}`)
		defer ctrl.Finish()

		mockUC.EXPECT().VerifyOTP(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.New(apperrors.CodeInvalidOTP, "invalid verification code"))

		err := handler.VerifyOTP(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("lockout maps to 429", func(t *testing.T) {
		mockUC, handler, c, rec, ctrl := newAuthContext(t, http.MethodPost, "/auth/otp/verify",
			`{"phone_number": "+6281234567890", "code": "000000"}`)
		defer ctrl.Finish()

		mockUC.EXPECT().VerifyOTP(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.New(apperrors.CodeTooManyAttempts, "locked"))

		err := handler.VerifyOTP(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("missing code is rejected before the usecase", func(t *testing.T) {
		_, handler, c, rec, ctrl := newAuthContext(t, http.MethodPost, "/auth/otp/verify",
			`{"phone_number": "+6281234567890"}`)
		defer ctrl.Finish()

		err := handler.VerifyOTP(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	t.Run("uninvited customer maps to 404", func(t *testing.T) {
		mockUC, handler, c, rec, ctrl := newAuthContext(t, http.MethodPost, "/auth/login",
			`{"phone_number": "+6281234567890", "role": "customer"}`)
		defer ctrl.Finish()

		mockUC.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.New(apperrors.CodeUserNotFound, "phone number is not invited by any seller"))

		err := handler.Login(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing role is rejected", func(t *testing.T) {
		_, handler, c, rec, ctrl := newAuthContext(t, http.MethodPost, "/auth/login",
			`{"phone_number": "+6281234567890"}`)
		defer ctrl.Finish()

		err := handler.Login(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSignupHandler(t *testing.T) {
	t.Run("customer signup maps to 403", func(t *testing.T) {
		mockUC, handler, c, rec, ctrl := newAuthContext(t, http.MethodPost, "/auth/signup",
			`{"phone_number": "+6281234567890", "role": "customer"}`)
		defer ctrl.Finish()

		mockUC.EXPECT().Signup(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.New(apperrors.CodeForbiddenRole, "customers join by invitation only"))

		err := handler.Signup(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("seller signup returns 201", func(t *testing.T) {
		mockUC, handler, c, rec, ctrl := newAuthContext(t, http.MethodPost, "/auth/signup",
			`{"phone_number": "+6281234567890", "role": "seller", "username": "toko"}`)
		defer ctrl.Finish()

		mockUC.EXPECT().Signup(gomock.Any(), gomock.Any()).
			Return(&models.AuthResponse{Token: "jwt", NewCreatedUser: true}, nil)

		err := handler.Signup(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestAcceptInviteHandler(t *testing.T) {
	inviteID := uuid.New()
	userID := uuid.New()

	t.Run("uses the identity from the session", func(t *testing.T) {
		mockUC, handler, c, rec, ctrl := newAuthContext(t, http.MethodPost, "/invitations/respond",
			`{"invite_id": "`+inviteID.String()+`", "invitation_status": "accepted"}`)
		defer ctrl.Finish()
		c.Set("user_id", userID.String())

		mockUC.EXPECT().AcceptInvite(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, req *models.AcceptInviteRequest) (*models.Invitation, error) {
				assert.Equal(t, userID, req.UserID)
				return &models.Invitation{ID: inviteID, Status: models.InvitationStatusAccepted}, nil
			})

		err := handler.AcceptInvite(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("already processed maps to 409", func(t *testing.T) {
		mockUC, handler, c, rec, ctrl := newAuthContext(t, http.MethodPost, "/invitations/respond",
			`{"invite_id": "`+inviteID.String()+`", "invitation_status": "rejected"}`)
		defer ctrl.Finish()
		c.Set("user_id", userID.String())

		mockUC.EXPECT().AcceptInvite(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.New(apperrors.CodeInvitationProcessed, "invitation already processed"))

		err := handler.AcceptInvite(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("missing status is rejected", func(t *testing.T) {
		_, handler, c, rec, ctrl := newAuthContext(t, http.MethodPost, "/invitations/respond",
			`{"invite_id": "`+inviteID.String()+`"}`)
		defer ctrl.Finish()

		err := handler.AcceptInvite(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
