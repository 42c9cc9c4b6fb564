package chat

import (
	"context"

	"github.com/driveaid/driveaid/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/driveaid/driveaid/services/chat ChatUC

// ChatUC represents the chat usecase interface. Both operations gate on
// request participation: the request's driver, its assigned mechanic,
// or any admin.
type ChatUC interface {
	History(ctx context.Context, actor models.Actor, requestID uuid.UUID, limit, skip int) ([]models.ChatMessage, error)
	Send(ctx context.Context, actor models.Actor, requestID uuid.UUID, message string) (*models.ChatMessage, error)
}

//go:generate mockgen -destination=mocks/mock_request_store.go -package=mocks github.com/driveaid/driveaid/services/chat RequestStore

// RequestStore looks up the request being chatted about. The requests
// repository satisfies this interface.
type RequestStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.ServiceRequest, error)
}

//go:generate mockgen -destination=mocks/mock_mechanic_store.go -package=mocks github.com/driveaid/driveaid/services/chat MechanicStore

// MechanicStore resolves the mechanic profile owned by a user. The
// mechanics repository satisfies this interface.
type MechanicStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Mechanic, error)
}
