package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/driveaid/driveaid/internal/pkg/apperrors"
	"github.com/driveaid/driveaid/internal/pkg/logger"
	"github.com/driveaid/driveaid/internal/pkg/models"
	"github.com/google/uuid"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// History returns a page of the request's chat, oldest first
func (u *ChatUC) History(ctx context.Context, actor models.Actor, requestID uuid.UUID, limit, skip int) ([]models.ChatMessage, error) {
	if err := u.ensureParticipant(ctx, actor, requestID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if skip < 0 {
		skip = 0
	}

	return u.repo.ListByRequest(ctx, requestID, limit, skip)
}

// Send persists a chat message and publishes it for room fan-out. The
// sender receives the canonical copy over the socket like everyone else
// and reconciles it against their optimistic echo.
func (u *ChatUC) Send(ctx context.Context, actor models.Actor, requestID uuid.UUID, message string) (*models.ChatMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", apperrors.ErrValidation)
	}

	if err := u.ensureParticipant(ctx, actor, requestID); err != nil {
		return nil, err
	}

	chatMessage := &models.ChatMessage{
		ID:        uuid.New(),
		RequestID: requestID,
		SenderID:  actor.UserID,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := u.repo.Insert(ctx, chatMessage); err != nil {
		return nil, fmt.Errorf("failed to persist chat message: %w", err)
	}

	event := &models.ChatMessageEvent{Message: chatMessage}
	if err := u.gw.PublishChatMessage(ctx, event); err != nil {
		logger.Error("Failed to publish chat message event",
			logger.String("request_id", requestID.String()),
			logger.String("message_id", chatMessage.ID.String()),
			logger.Err(err))
	}

	return chatMessage, nil
}

// ensureParticipant verifies the actor belongs to the request's chat.
// Admins always pass; drivers must own the request; mechanics must be
// the assigned mechanic.
func (u *ChatUC) ensureParticipant(ctx context.Context, actor models.Actor, requestID uuid.UUID) error {
	request, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	switch actor.Role {
	case models.RoleAdmin:
		return nil
	case models.RoleDriver:
		if request.DriverID != nil && *request.DriverID == actor.UserID {
			return nil
		}
	case models.RoleMechanic:
		mechanic, err := u.mechanics.GetByUserID(ctx, actor.UserID)
		if errors.Is(err, apperrors.ErrNotFound) {
			break
		}
		if err != nil {
			return err
		}
		if request.MechanicID != nil && *request.MechanicID == mechanic.ID {
			return nil
		}
	}

	return fmt.Errorf("%w: not a participant of this request", apperrors.ErrForbidden)
}
