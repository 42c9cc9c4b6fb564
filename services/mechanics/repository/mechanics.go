package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/driveaid/driveaid/internal/pkg/apperrors"
	"github.com/driveaid/driveaid/internal/pkg/constants"
	"github.com/driveaid/driveaid/internal/pkg/logger"
	"github.com/driveaid/driveaid/internal/pkg/models"
	"github.com/google/uuid"
)

// GetByUserID retrieves the mechanic profile owned by a user
func (r *MechanicRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Mechanic, error) {
	query := `
		SELECT id, user_id, shop_name, services, latitude, longitude, geohash,
			is_verified, created_at, updated_at
		FROM mechanics
		WHERE user_id = $1
	`

	var mechanic models.Mechanic
	err := r.db.GetContext(ctx, &mechanic, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: mechanic profile", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get mechanic: %w", err)
	}

	return &mechanic, nil
}

// GetByID retrieves a mechanic profile by id
func (r *MechanicRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Mechanic, error) {
	query := `
		SELECT id, user_id, shop_name, services, latitude, longitude, geohash,
			is_verified, created_at, updated_at
		FROM mechanics
		WHERE id = $1
	`

	var mechanic models.Mechanic
	err := r.db.GetContext(ctx, &mechanic, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: mechanic profile", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get mechanic: %w", err)
	}

	return &mechanic, nil
}

// Upsert inserts or updates the mechanic profile keyed on the owning user,
// then refreshes the Redis GEO set when a location is present.
func (r *MechanicRepo) Upsert(ctx context.Context, mechanic *models.Mechanic) error {
	query := `
		INSERT INTO mechanics (id, user_id, shop_name, services, latitude, longitude,
			geohash, is_verified, created_at, updated_at
		) VALUES (:id, :user_id, :shop_name, :services, :latitude, :longitude,
			:geohash, :is_verified, :created_at, :updated_at)
		ON CONFLICT (user_id) DO UPDATE SET
			shop_name = EXCLUDED.shop_name,
			services = EXCLUDED.services,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			geohash = EXCLUDED.geohash,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.NamedExecContext(ctx, query, mechanic)
	if err != nil {
		return fmt.Errorf("failed to upsert mechanic: %w", err)
	}

	// The insert may have hit the conflict path; re-read for the canonical row
	stored, err := r.GetByUserID(ctx, mechanic.UserID)
	if err != nil {
		return err
	}
	*mechanic = *stored

	if mechanic.Latitude != nil && mechanic.Longitude != nil {
		err = r.redisClient.GeoAdd(ctx, constants.KeyMechanicGeo,
			*mechanic.Longitude, *mechanic.Latitude, mechanic.ID.String())
		if err != nil {
			// Geo index is advisory; the profile row is already durable
			logger.Warn("Failed to update mechanic geo index",
				logger.String("mechanic_id", mechanic.ID.String()),
				logger.Err(err))
		}
	}

	return nil
}

// SetVerified flips the admin verification flag
func (r *MechanicRepo) SetVerified(ctx context.Context, id uuid.UUID, verified bool) (*models.Mechanic, error) {
	query := `
		UPDATE mechanics
		SET is_verified = $2, updated_at = now()
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, id, verified)
	if err != nil {
		return nil, fmt.Errorf("failed to update mechanic verification: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: mechanic profile", apperrors.ErrNotFound)
	}

	return r.GetByID(ctx, id)
}

// List returns mechanic profiles, optionally filtered by verification state.
// The filter is a closed two-case query, not a dynamically built one.
func (r *MechanicRepo) List(ctx context.Context, verified *bool, limit int) ([]models.Mechanic, error) {
	const baseQuery = `
		SELECT id, user_id, shop_name, services, latitude, longitude, geohash,
			is_verified, created_at, updated_at
		FROM mechanics
	`

	mechanics := []models.Mechanic{}
	var err error
	if verified == nil {
		err = r.db.SelectContext(ctx, &mechanics,
			baseQuery+` ORDER BY created_at DESC LIMIT $1`, limit)
	} else {
		err = r.db.SelectContext(ctx, &mechanics,
			baseQuery+` WHERE is_verified = $1 ORDER BY created_at DESC LIMIT $2`, *verified, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list mechanics: %w", err)
	}

	return mechanics, nil
}

// Nearby finds verified mechanics within radiusKm of the given point using
// the Redis GEO set, hydrating each hit from PostgreSQL.
func (r *MechanicRepo) Nearby(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyMechanic, error) {
	locations, err := r.redisClient.GeoRadius(ctx, constants.KeyMechanicGeo,
		longitude, latitude, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to query mechanic geo index: %w", err)
	}

	nearby := make([]models.NearbyMechanic, 0, len(locations))
	for _, loc := range locations {
		id, err := uuid.Parse(loc.Name)
		if err != nil {
			continue
		}

		mechanic, err := r.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				// Stale geo entry; drop it and move on
				_ = r.redisClient.GeoRemove(ctx, constants.KeyMechanicGeo, loc.Name)
				continue
			}
			return nil, err
		}
		if !mechanic.IsVerified {
			continue
		}

		nearby = append(nearby, models.NearbyMechanic{
			Mechanic:   *mechanic,
			DistanceKm: loc.Dist,
		})
	}

	return nearby, nil
}
