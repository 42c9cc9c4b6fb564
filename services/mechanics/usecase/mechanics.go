package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/driveaid/driveaid/internal/pkg/apperrors"
	"github.com/driveaid/driveaid/internal/pkg/models"
	"github.com/driveaid/driveaid/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const listLimit = 100

// GetProfile returns the mechanic profile owned by the given user
func (u *MechanicUC) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Mechanic, error) {
	return u.repo.GetByUserID(ctx, userID)
}

// UpsertProfile creates or updates the caller's mechanic profile. The
// verification flag is never writable here; only admins flip it.
func (u *MechanicUC) UpsertProfile(ctx context.Context, userID uuid.UUID, req *models.MechanicUpsertRequest) (*models.Mechanic, error) {
	if req.ShopName == "" {
		return nil, fmt.Errorf("%w: shop_name is required", apperrors.ErrValidation)
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return nil, fmt.Errorf("%w: latitude and longitude must be provided together", apperrors.ErrValidation)
	}

	now := time.Now()
	mechanic := &models.Mechanic{
		ID:        uuid.New(),
		UserID:    userID,
		ShopName:  req.ShopName,
		Services:  pq.StringArray(req.Services),
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Latitude != nil && req.Longitude != nil {
		hash := utils.EncodeLocation(*req.Latitude, *req.Longitude)
		mechanic.Geohash = &hash
	}

	if err := u.repo.Upsert(ctx, mechanic); err != nil {
		return nil, fmt.Errorf("failed to upsert mechanic profile: %w", err)
	}

	return mechanic, nil
}

// Verify sets the admin verification flag on a mechanic profile
func (u *MechanicUC) Verify(ctx context.Context, mechanicID uuid.UUID, verified bool) (*models.Mechanic, error) {
	return u.repo.SetVerified(ctx, mechanicID, verified)
}

// List returns mechanic profiles, optionally filtered by verification state
func (u *MechanicUC) List(ctx context.Context, verified *bool) ([]models.Mechanic, error) {
	return u.repo.List(ctx, verified, listLimit)
}

// Nearby returns verified mechanics within radiusKm of the given point
func (u *MechanicUC) Nearby(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyMechanic, error) {
	if radiusKm <= 0 {
		return nil, fmt.Errorf("%w: radius_km must be positive", apperrors.ErrValidation)
	}
	return u.repo.Nearby(ctx, latitude, longitude, radiusKm)
}
