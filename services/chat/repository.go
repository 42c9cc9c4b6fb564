package chat

import (
	"context"

	"github.com/driveaid/driveaid/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/driveaid/driveaid/services/chat ChatRepo

// ChatRepo represents the chat message repository interface
type ChatRepo interface {
	ListByRequest(ctx context.Context, requestID uuid.UUID, limit, skip int) ([]models.ChatMessage, error)
	Insert(ctx context.Context, message *models.ChatMessage) error
}
