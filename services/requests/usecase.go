package requests

import (
	"context"

	"github.com/driveaid/driveaid/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/driveaid/driveaid/services/requests RequestUC

// RequestUC represents the service-request usecase interface
type RequestUC interface {
	List(ctx context.Context, actor models.Actor) ([]models.ServiceRequest, error)
	Create(ctx context.Context, actor models.Actor, payload *models.CreateRequestPayload) (*models.ServiceRequest, error)
	Accept(ctx context.Context, actor models.Actor, requestID uuid.UUID) (*models.ServiceRequest, error)
	UpdateStatus(ctx context.Context, actor models.Actor, requestID uuid.UUID, status string) (*models.ServiceRequest, error)
}

//go:generate mockgen -destination=mocks/mock_mechanic_resolver.go -package=mocks github.com/driveaid/driveaid/services/requests MechanicResolver

// MechanicResolver resolves the mechanic profile owned by a user. The
// mechanics repository satisfies this interface.
type MechanicResolver interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Mechanic, error)
}
