package repository

import (
	"github.com/jmoiron/sqlx"
)

// UserRepo implements the user repository against PostgreSQL
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}
