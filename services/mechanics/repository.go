package mechanics

import (
	"context"

	"github.com/driveaid/driveaid/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/driveaid/driveaid/services/mechanics MechanicRepo

// MechanicRepo represents the mechanic repository interface
type MechanicRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Mechanic, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Mechanic, error)
	Upsert(ctx context.Context, mechanic *models.Mechanic) error
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) (*models.Mechanic, error)
	List(ctx context.Context, verified *bool, limit int) ([]models.Mechanic, error)
	Nearby(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyMechanic, error)
}
