package repository

import (
	"context"
	"fmt"

	"github.com/driveaid/driveaid/internal/pkg/models"
	"github.com/google/uuid"
)

// ListByRequest returns a page of messages for a request in send order
func (r *ChatRepo) ListByRequest(ctx context.Context, requestID uuid.UUID, limit, skip int) ([]models.ChatMessage, error) {
	query := `
	SELECT id, request_id, sender_id, message, created_at
	FROM chat_messages
	WHERE request_id = $1
	ORDER BY created_at ASC
	LIMIT $2 OFFSET $3`

	var messages []models.ChatMessage
	if err := r.db.SelectContext(ctx, &messages, query, requestID, limit, skip); err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	return messages, nil
}

// Insert persists a new chat message
func (r *ChatRepo) Insert(ctx context.Context, message *models.ChatMessage) error {
	query := `
	INSERT INTO chat_messages (id, request_id, sender_id, message, created_at)
	VALUES (:id, :request_id, :sender_id, :message, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, message); err != nil {
		return fmt.Errorf("failed to insert chat message: %w", err)
	}
	return nil
}
