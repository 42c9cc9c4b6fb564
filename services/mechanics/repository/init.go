package repository

import (
	"github.com/driveaid/driveaid/internal/pkg/database"
	"github.com/jmoiron/sqlx"
)

// MechanicRepo implements the mechanic repository against PostgreSQL with a
// Redis GEO set for live shop locations.
type MechanicRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewMechanicRepo creates a new mechanic repository
func NewMechanicRepo(db *sqlx.DB, redisClient *database.RedisClient) *MechanicRepo {
	return &MechanicRepo{
		db:          db,
		redisClient: redisClient,
	}
}
