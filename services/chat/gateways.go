package chat

import (
	"context"

	"github.com/driveaid/driveaid/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/driveaid/driveaid/services/chat ChatGW

// ChatGW defines the chat gateways interface
type ChatGW interface {
	PublishChatMessage(ctx context.Context, event *models.ChatMessageEvent) error
}
