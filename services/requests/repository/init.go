package repository

import (
	"github.com/jmoiron/sqlx"
)

// RequestRepo implements the service-request repository on PostgreSQL
type RequestRepo struct {
	db *sqlx.DB
}

// NewRequestRepo creates a new service-request repository
func NewRequestRepo(db *sqlx.DB) *RequestRepo {
	return &RequestRepo{
		db: db,
	}
}
