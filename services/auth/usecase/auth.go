package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	apperrors "github.com/danisworo/jualin/internal/pkg/errors"
	jwtpkg "github.com/danisworo/jualin/internal/pkg/jwt"
	"github.com/danisworo/jualin/internal/pkg/logger"
	"github.com/danisworo/jualin/internal/pkg/models"
	"github.com/danisworo/jualin/internal/utils"
)

// Signup registers a new seller or admin. Customers never sign up
// directly; their accounts are created on first login against a pending
// invitation.
func (uc *AuthUC) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	if req.Role == models.RoleCustomer {
		return nil, apperrors.New(apperrors.CodeForbiddenRole, "customers join by invitation only")
	}
	if req.Role != models.RoleSeller && req.Role != models.RoleAdmin {
		return nil, apperrors.New(apperrors.CodeForbiddenRole, fmt.Sprintf("unknown role: %s", req.Role))
	}

	phone, err := utils.NormalizePhone(req.PhoneNumber)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidPhone, "invalid phone number", err)
	}

	if _, err := uc.userRepo.GetUserByPhone(ctx, phone); err == nil {
		return nil, apperrors.New(apperrors.CodePhoneAlreadyRegistered, "phone number is already registered")
	} else if !apperrors.Is(err, apperrors.CodeUserNotFound) {
		return nil, err
	}

	if req.Email != "" {
		if _, err := uc.userRepo.GetUserByEmail(ctx, req.Email); err == nil {
			return nil, apperrors.New(apperrors.CodeEmailAlreadyRegistered, "email is already registered")
		} else if !apperrors.Is(err, apperrors.CodeUserNotFound) {
			return nil, err
		}
	}

	user := &models.User{
		ID:          uuid.New(),
		Username:    req.Username,
		PhoneNumber: phone,
		Email:       req.Email,
		Role:        req.Role,
		IsActive:    true,
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.PhoneNumber, user.Role, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("user signed up",
		logger.String("user_id", user.ID.String()),
		logger.String("role", user.Role))

	return &models.AuthResponse{
		Token:          token,
		UserID:         user.ID.String(),
		Role:           user.Role,
		ExpiresAt:      expiresAt,
		NewCreatedUser: true,
	}, nil
}

// Login establishes a session for a known phone in a given role. An
// unknown phone logging in as a customer is admitted only when a pending
// invitation names it, in which case the account is created on the spot.
func (uc *AuthUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	phone, err := utils.NormalizePhone(req.PhoneNumber)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidPhone, "invalid phone number", err)
	}

	newCreated := false
	user, err := uc.userRepo.GetUserByPhoneAndRole(ctx, phone, req.Role)
	if err != nil {
		if !apperrors.Is(err, apperrors.CodeUserNotFound) {
			return nil, err
		}
		if req.Role != models.RoleCustomer {
			return nil, apperrors.New(apperrors.CodeUserNotFound, "user not found")
		}
		user, err = uc.createInvitedCustomer(ctx, phone, req.DeepLinkToken)
		if err != nil {
			return nil, err
		}
		newCreated = true
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.PhoneNumber, user.Role, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if req.DeviceToken != "" {
		if err := uc.deviceRepo.RegisterDeviceToken(ctx, user.ID, req.DeviceToken); err != nil {
			logger.Warn("failed to register device token",
				logger.String("user_id", user.ID.String()),
				logger.Err(err))
		}
	}

	resp := &models.AuthResponse{
		Token:          token,
		UserID:         user.ID.String(),
		Role:           user.Role,
		ExpiresAt:      expiresAt,
		NewCreatedUser: newCreated,
	}

	if user.Role == models.RoleCustomer {
		contacts, err := uc.inviteGW.AcceptedContactsForUser(ctx, user.ID)
		if err != nil {
			logger.Warn("failed to load seller contacts",
				logger.String("user_id", user.ID.String()),
				logger.Err(err))
		} else {
			resp.SellerContacts = contacts
		}
	}

	logger.Info("user logged in",
		logger.String("user_id", user.ID.String()),
		logger.String("role", user.Role),
		logger.Bool("new_user", newCreated))

	return resp, nil
}

// createInvitedCustomer admits an unknown phone as a customer when a
// pending invitation covers it. A deep-link token identifies the exact
// invitation; without one the pending invitation for the phone is used.
func (uc *AuthUC) createInvitedCustomer(ctx context.Context, phone, deepLinkToken string) (*models.User, error) {
	var (
		inv *models.Invitation
		err error
	)
	if deepLinkToken != "" {
		inv, err = uc.inviteGW.InvitationByToken(ctx, deepLinkToken)
	} else {
		inv, err = uc.inviteGW.PendingInvitationByPhone(ctx, phone)
	}
	if err != nil {
		if apperrors.Is(err, apperrors.CodeInvitationNotFound) {
			return nil, apperrors.New(apperrors.CodeUserNotFound, "phone number is not invited by any seller")
		}
		return nil, err
	}
	if inv.Status != models.InvitationStatusPending {
		return nil, apperrors.New(apperrors.CodeUserNotFound, "phone number is not invited by any seller")
	}

	user := &models.User{
		ID:          uuid.New(),
		PhoneNumber: phone,
		Role:        models.RoleCustomer,
		IsActive:    true,
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create invited customer: %w", err)
	}

	logger.Info("invited customer created on first login",
		logger.String("user_id", user.ID.String()),
		logger.String("invitation_id", inv.ID.String()))

	return user, nil
}
