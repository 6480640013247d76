package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/atapsolar/authhub/internal/pkg/database"
	"github.com/atapsolar/authhub/internal/pkg/models"
)

// AuthRepo implements the auth repository interfaces over Postgres (identity,
// origin allow-list) and Redis (single-slot OTP store)
type AuthRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewAuthRepo creates a new auth repository instance
func NewAuthRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *AuthRepo {
	return &AuthRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
