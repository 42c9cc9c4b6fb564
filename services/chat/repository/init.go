package repository

import (
	"github.com/jmoiron/sqlx"
)

// ChatRepo implements the chat message repository on PostgreSQL
type ChatRepo struct {
	db *sqlx.DB
}

// NewChatRepo creates a new chat message repository
func NewChatRepo(db *sqlx.DB) *ChatRepo {
	return &ChatRepo{
		db: db,
	}
}
