package requests

import (
	"context"

	"github.com/driveaid/driveaid/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/driveaid/driveaid/services/requests RequestRepo

// RequestRepo represents the service-request repository interface.
// The three list variants form the closed set of role-scoped queries.
type RequestRepo interface {
	ListAll(ctx context.Context) ([]models.ServiceRequest, error)
	ListForMechanic(ctx context.Context, mechanicID uuid.UUID) ([]models.ServiceRequest, error)
	ListForDriver(ctx context.Context, driverID uuid.UUID) ([]models.ServiceRequest, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ServiceRequest, error)
	Create(ctx context.Context, request *models.ServiceRequest) error
	Accept(ctx context.Context, requestID, mechanicID uuid.UUID) (*models.ServiceRequest, error)
	UpdateStatus(ctx context.Context, requestID, mechanicID uuid.UUID, fromStatus, toStatus string) (*models.ServiceRequest, error)
}
