package mechanics

import (
	"context"

	"github.com/driveaid/driveaid/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/driveaid/driveaid/services/mechanics MechanicUC

// MechanicUC represents the mechanic usecase interface
type MechanicUC interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.Mechanic, error)
	UpsertProfile(ctx context.Context, userID uuid.UUID, req *models.MechanicUpsertRequest) (*models.Mechanic, error)
	Verify(ctx context.Context, mechanicID uuid.UUID, verified bool) (*models.Mechanic, error)
	List(ctx context.Context, verified *bool) ([]models.Mechanic, error)
	Nearby(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyMechanic, error)
}
