package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/driveaid/driveaid/internal/pkg/apperrors"
	"github.com/driveaid/driveaid/internal/pkg/models"
	"github.com/google/uuid"
)

// selectColumns joins the assigned mechanic so listings can show the
// shop without a second round trip.
const selectColumns = `
	SELECT r.id, r.driver_id, r.mechanic_id, r.problem_description, r.address,
	       r.latitude, r.longitude, r.geohash, r.status,
	       r.created_at, r.updated_at,
	       m.shop_name AS mechanic_shop_name, m.is_verified AS mechanic_verified
	FROM service_requests r
	LEFT JOIN mechanics m ON m.id = r.mechanic_id`

// ListAll returns every service request, newest first
func (r *RequestRepo) ListAll(ctx context.Context) ([]models.ServiceRequest, error) {
	query := selectColumns + ` ORDER BY r.created_at DESC`

	var requests []models.ServiceRequest
	if err := r.db.SelectContext(ctx, &requests, query); err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return requests, nil
}

// ListForMechanic returns the open pool plus the mechanic's own jobs
func (r *RequestRepo) ListForMechanic(ctx context.Context, mechanicID uuid.UUID) ([]models.ServiceRequest, error) {
	query := selectColumns + `
	WHERE (r.status = $1 AND r.mechanic_id IS NULL) OR r.mechanic_id = $2
	ORDER BY r.created_at DESC`

	var requests []models.ServiceRequest
	if err := r.db.SelectContext(ctx, &requests, query, models.StatusPending, mechanicID); err != nil {
		return nil, fmt.Errorf("failed to list requests for mechanic: %w", err)
	}
	return requests, nil
}

// ListForDriver returns the requests submitted by the given driver
func (r *RequestRepo) ListForDriver(ctx context.Context, driverID uuid.UUID) ([]models.ServiceRequest, error) {
	query := selectColumns + `
	WHERE r.driver_id = $1
	ORDER BY r.created_at DESC`

	var requests []models.ServiceRequest
	if err := r.db.SelectContext(ctx, &requests, query, driverID); err != nil {
		return nil, fmt.Errorf("failed to list requests for driver: %w", err)
	}
	return requests, nil
}

// GetByID returns a single service request with its assigned mechanic
func (r *RequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.ServiceRequest, error) {
	query := selectColumns + ` WHERE r.id = $1`

	var request models.ServiceRequest
	err := r.db.GetContext(ctx, &request, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: service request", apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get request: %w", err)
	}
	return &request, nil
}

// Create inserts a new service request
func (r *RequestRepo) Create(ctx context.Context, request *models.ServiceRequest) error {
	query := `
	INSERT INTO service_requests (
		id, driver_id, problem_description, address,
		latitude, longitude, geohash, status, created_at, updated_at
	) VALUES (
		:id, :driver_id, :problem_description, :address,
		:latitude, :longitude, :geohash, :status, :created_at, :updated_at
	)`

	if _, err := r.db.NamedExecContext(ctx, query, request); err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return nil
}

// Accept claims a pending unassigned request for the given mechanic.
// The conditional UPDATE is the only write path that assigns a mechanic,
// so concurrent accepts resolve to exactly one winner.
func (r *RequestRepo) Accept(ctx context.Context, requestID, mechanicID uuid.UUID) (*models.ServiceRequest, error) {
	query := `
	UPDATE service_requests
	SET mechanic_id = $1, status = $2, updated_at = now()
	WHERE id = $3 AND status = $4 AND mechanic_id IS NULL`

	result, err := r.db.ExecContext(ctx, query, mechanicID, models.StatusAccepted, requestID, models.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to accept request: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to accept request: %w", err)
	}
	if rows == 0 {
		// Lost the race or the request never existed. Re-read to tell
		// the two apart.
		if _, getErr := r.GetByID(ctx, requestID); getErr != nil {
			return nil, getErr
		}
		return nil, fmt.Errorf("%w: request already taken", apperrors.ErrConflict)
	}

	return r.GetByID(ctx, requestID)
}

// UpdateStatus moves a request owned by the given mechanic from one
// status to another in a single conditional write.
func (r *RequestRepo) UpdateStatus(ctx context.Context, requestID, mechanicID uuid.UUID, fromStatus, toStatus string) (*models.ServiceRequest, error) {
	query := `
	UPDATE service_requests
	SET status = $1, updated_at = now()
	WHERE id = $2 AND mechanic_id = $3 AND status = $4`

	result, err := r.db.ExecContext(ctx, query, toStatus, requestID, mechanicID, fromStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to update request status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to update request status: %w", err)
	}
	if rows == 0 {
		current, getErr := r.GetByID(ctx, requestID)
		if getErr != nil {
			return nil, getErr
		}
		if current.MechanicID == nil || *current.MechanicID != mechanicID {
			return nil, fmt.Errorf("%w: request is not assigned to this mechanic", apperrors.ErrForbidden)
		}
		return nil, fmt.Errorf("%w: cannot move request from %s to %s", apperrors.ErrConflict, current.Status, toStatus)
	}

	return r.GetByID(ctx, requestID)
}
