package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/danisworo/jualin/internal/pkg/constants"
)

// RegisterDeviceToken records a push target for a user. Tokens live in a
// redis set so re-registering the same device is idempotent.
func (r *AuthRepo) RegisterDeviceToken(ctx context.Context, userID uuid.UUID, token string) error {
	key := fmt.Sprintf(constants.KeyDeviceTokens, userID.String())
	if err := r.redisClient.SAdd(ctx, key, token); err != nil {
		return fmt.Errorf("failed to register device token: %w", err)
	}

	return nil
}

// DeviceTokens returns all registered push targets for a user
func (r *AuthRepo) DeviceTokens(ctx context.Context, userID uuid.UUID) ([]string, error) {
	key := fmt.Sprintf(constants.KeyDeviceTokens, userID.String())
	tokens, err := r.redisClient.SMembers(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get device tokens: %w", err)
	}

	return tokens, nil
}

// RemoveDeviceToken drops a push target for a user
func (r *AuthRepo) RemoveDeviceToken(ctx context.Context, userID uuid.UUID, token string) error {
	key := fmt.Sprintf(constants.KeyDeviceTokens, userID.String())
	if err := r.redisClient.SRem(ctx, key, token); err != nil {
		return fmt.Errorf("failed to remove device token: %w", err)
	}

	return nil
}
