package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/danisworo/jualin/internal/pkg/models"
)

// ContactRepo implements contact and invitation persistence on PostgreSQL
type ContactRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewContactRepo creates a new contact repository
func NewContactRepo(cfg *models.Config, db *sqlx.DB) *ContactRepo {
	return &ContactRepo{
		cfg: cfg,
		db:  db,
	}
}
