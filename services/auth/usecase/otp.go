package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	apperrors "github.com/danisworo/jualin/internal/pkg/errors"
	jwtpkg "github.com/danisworo/jualin/internal/pkg/jwt"
	"github.com/danisworo/jualin/internal/pkg/logger"
	"github.com/danisworo/jualin/internal/pkg/models"
	"github.com/danisworo/jualin/internal/utils"
)

const otpCodeLength = 6

// SendOTP issues a fresh challenge for a (phone, purpose) key. Any prior
// pending challenge is expired first so at most one is ever live. A live
// challenge inside the resend cooldown blocks reissue.
func (uc *AuthUC) SendOTP(ctx context.Context, req *models.SendOTPRequest) (*models.OTPResponse, error) {
	phone, err := utils.NormalizePhone(req.PhoneNumber)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidPhone, "invalid phone number", err)
	}

	purpose := req.Purpose
	if purpose == "" {
		purpose = models.OTPPurposeLogin
	}

	if existing, err := uc.otpRepo.GetPendingOTP(ctx, phone, purpose); err == nil {
		if cooldownErr := uc.checkCooldown(existing); cooldownErr != nil {
			return nil, cooldownErr
		}
	}

	return uc.issue(ctx, phone, purpose, 0)
}

// ResendOTP reissues the live challenge for a key. It requires an existing
// pending challenge and enforces both the cooldown and the resend cap.
func (uc *AuthUC) ResendOTP(ctx context.Context, req *models.SendOTPRequest) (*models.OTPResponse, error) {
	phone, err := utils.NormalizePhone(req.PhoneNumber)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidPhone, "invalid phone number", err)
	}

	purpose := req.Purpose
	if purpose == "" {
		purpose = models.OTPPurposeLogin
	}

	existing, err := uc.otpRepo.GetPendingOTP(ctx, phone, purpose)
	if err != nil {
		return nil, err
	}

	if existing.ResendCount >= uc.cfg.OTP.MaxResendAttempts {
		return nil, apperrors.New(apperrors.CodeMaxResendReached, "maximum resend attempts reached")
	}
	if err := uc.checkCooldown(existing); err != nil {
		return nil, err
	}

	return uc.issue(ctx, phone, purpose, existing.ResendCount+1)
}

// checkCooldown rejects reissue while the previous send is still fresh
func (uc *AuthUC) checkCooldown(existing *models.OTP) error {
	cooldown := time.Duration(uc.cfg.OTP.ResendCooldownMinutes) * time.Minute
	if time.Since(existing.LastSentAt) < cooldown {
		return apperrors.New(apperrors.CodeResendCooldown, "please wait before requesting another code")
	}
	return nil
}

// issue generates, persists and dispatches a new challenge. Dispatch
// failure does not roll back issuance: the code is already committed, a
// warning is logged, and the caller learns delivery was not confirmed.
// The raw code leaves the process only in explicit debug mode.
func (uc *AuthUC) issue(ctx context.Context, phone, purpose string, resendCount int) (*models.OTPResponse, error) {
	code, err := utils.GenerateNumericCode(otpCodeLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate otp code: %w", err)
	}

	otp := &models.OTP{
		PhoneNumber: phone,
		Code:        code,
		Purpose:     purpose,
		ResendCount: resendCount,
		ExpiresAt:   time.Now().Add(time.Duration(uc.cfg.OTP.ExpiryMinutes) * time.Minute),
	}

	if err := uc.otpRepo.IssueOTP(ctx, otp); err != nil {
		return nil, fmt.Errorf("failed to issue otp: %w", err)
	}

	resp := &models.OTPResponse{
		PhoneNumber: phone,
		Purpose:     purpose,
		ExpiresAt:   otp.ExpiresAt.Unix(),
	}

	if uc.smsGW.IsConfigured() {
		body := fmt.Sprintf("%s is your %s verification code. It expires in %d minutes.",
			code, uc.cfg.App.Name, uc.cfg.OTP.ExpiryMinutes)
		if err := uc.smsGW.SendSMS(ctx, phone, body); err != nil {
			logger.Warn("OTP dispatch failed, code persisted without delivery",
				logger.String("phone", phone),
				logger.String("purpose", purpose),
				logger.Err(err))
		} else {
			resp.Delivered = true
		}
	} else {
		logger.Warn("SMS provider not configured, OTP persisted without delivery",
			logger.String("phone", phone),
			logger.String("purpose", purpose))
	}

	if !resp.Delivered && uc.cfg.OTP.DebugReturnCode {
		resp.Code = code
	}

	return resp, nil
}

// VerifyOTP checks a submitted code against the live challenge. The
// finalizing writes are conditional updates, so concurrent attempts for
// the same phone cannot double-spend a challenge.
func (uc *AuthUC) VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) (*models.AuthResponse, error) {
	phone, err := utils.NormalizePhone(req.PhoneNumber)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidPhone, "invalid phone number", err)
	}

	purpose := req.Purpose
	if purpose == "" {
		purpose = models.OTPPurposeLogin
	}

	otp, err := uc.otpRepo.GetPendingOTP(ctx, phone, purpose)
	if err != nil {
		return nil, err
	}

	if otp.Locked {
		return nil, apperrors.New(apperrors.CodeTooManyAttempts, "too many failed attempts, verification is locked")
	}

	now := time.Now()
	if otp.IsExpired(now) {
		if err := uc.otpRepo.MarkExpired(ctx, otp.ID); err != nil {
			return nil, err
		}
		return nil, apperrors.New(apperrors.CodeOTPExpired, "verification code has expired")
	}

	if subtle.ConstantTimeCompare([]byte(otp.Code), []byte(req.Code)) != 1 {
		updated, err := uc.otpRepo.RegisterFailedAttempt(ctx, otp.ID, uc.cfg.OTP.MaxFailedAttempts)
		if err != nil {
			return nil, err
		}
		if updated.Locked {
			return nil, apperrors.New(apperrors.CodeTooManyAttempts, "too many failed attempts, verification is locked")
		}
		return nil, apperrors.New(apperrors.CodeInvalidOTP, "invalid verification code")
	}

	ok, err := uc.otpRepo.MarkVerified(ctx, otp.ID, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Lost the race against a concurrent attempt that finalized the row.
		return nil, apperrors.New(apperrors.CodeTooManyAttempts, "verification is no longer available for this code")
	}

	logger.Info("OTP verified",
		logger.String("phone", phone),
		logger.String("purpose", purpose))

	// Verification can succeed for a phone that has no account yet; the
	// session token is only minted when a user exists.
	resp := &models.AuthResponse{}

	var user *models.User
	if req.Role != "" {
		user, err = uc.userRepo.GetUserByPhoneAndRole(ctx, phone, req.Role)
	} else {
		user, err = uc.userRepo.GetUserByPhone(ctx, phone)
	}
	if err != nil {
		if apperrors.Is(err, apperrors.CodeUserNotFound) {
			return resp, nil
		}
		return nil, err
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.PhoneNumber, user.Role, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	resp.Token = token
	resp.UserID = user.ID.String()
	resp.Role = user.Role
	resp.ExpiresAt = expiresAt

	return resp, nil
}
