package gateway

import (
	"context"

	"github.com/driveaid/driveaid/internal/pkg/constants"
	"github.com/driveaid/driveaid/internal/pkg/models"
)

// PublishChatMessage announces a persisted chat message for room fan-out
func (g *ChatGW) PublishChatMessage(ctx context.Context, event *models.ChatMessageEvent) error {
	return g.producer.Publish(constants.TopicChatMessage, event)
}
