package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danisworo/jualin/internal/pkg/database"
	"github.com/danisworo/jualin/internal/pkg/models"
)

func setupDeviceRepoTest(t *testing.T) (*AuthRepo, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	repo := &AuthRepo{
		cfg:         &models.Config{},
		redisClient: &database.RedisClient{Client: client},
	}

	return repo, mr
}

func TestDeviceTokenRegistry(t *testing.T) {
	repo, _ := setupDeviceRepoTest(t)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("registering the same token twice is idempotent", func(t *testing.T) {
		require.NoError(t, repo.RegisterDeviceToken(ctx, userID, "tok-1"))
		require.NoError(t, repo.RegisterDeviceToken(ctx, userID, "tok-1"))
		require.NoError(t, repo.RegisterDeviceToken(ctx, userID, "tok-2"))

		tokens, err := repo.DeviceTokens(ctx, userID)

		assert.NoError(t, err)
		assert.ElementsMatch(t, []string{"tok-1", "tok-2"}, tokens)
	})

	t.Run("removal drops only the named token", func(t *testing.T) {
		require.NoError(t, repo.RemoveDeviceToken(ctx, userID, "tok-1"))

		tokens, err := repo.DeviceTokens(ctx, userID)

		assert.NoError(t, err)
		assert.Equal(t, []string{"tok-2"}, tokens)
	})

	t.Run("tokens are scoped per user", func(t *testing.T) {
		other := uuid.New()

		tokens, err := repo.DeviceTokens(ctx, other)

		assert.NoError(t, err)
		assert.Empty(t, tokens)
	})
}
