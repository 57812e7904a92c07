package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/danisworo/jualin/internal/pkg/database"
	"github.com/danisworo/jualin/internal/pkg/models"
)

// AuthRepo implements user and OTP persistence on PostgreSQL plus the
// redis-backed device-token registry.
type AuthRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewAuthRepo creates a new auth repository
func NewAuthRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *AuthRepo {
	return &AuthRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
