package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/driveaid/driveaid/internal/pkg/apperrors"
	"github.com/driveaid/driveaid/internal/pkg/logger"
	"github.com/driveaid/driveaid/internal/pkg/models"
	"github.com/driveaid/driveaid/internal/utils"
	"github.com/google/uuid"
)

// allowedTransitions maps a requested status to the status the request
// must currently hold. Repeating Accepted is a no-op rather than an error.
var allowedTransitions = map[string]string{
	models.StatusAccepted:  models.StatusAccepted,
	models.StatusCompleted: models.StatusAccepted,
}

// List returns the requests visible to the actor. Admins see everything,
// drivers see their own submissions, mechanics see the open pool plus
// their assigned jobs.
func (u *RequestUC) List(ctx context.Context, actor models.Actor) ([]models.ServiceRequest, error) {
	switch actor.Role {
	case models.RoleAdmin:
		return u.repo.ListAll(ctx)
	case models.RoleDriver:
		return u.repo.ListForDriver(ctx, actor.UserID)
	case models.RoleMechanic:
		mechanicID := uuid.Nil
		mechanic, err := u.mechanics.GetByUserID(ctx, actor.UserID)
		switch {
		case err == nil:
			mechanicID = mechanic.ID
		case errors.Is(err, apperrors.ErrNotFound):
			// No profile yet: the open pool is still visible.
		default:
			return nil, err
		}
		return u.repo.ListForMechanic(ctx, mechanicID)
	default:
		return nil, fmt.Errorf("%w: unknown role", apperrors.ErrForbidden)
	}
}

// Create submits a new service request. Drivers create for themselves;
// admins can create unattributed requests on a caller's behalf.
func (u *RequestUC) Create(ctx context.Context, actor models.Actor, payload *models.CreateRequestPayload) (*models.ServiceRequest, error) {
	if actor.Role != models.RoleDriver && actor.Role != models.RoleAdmin {
		return nil, fmt.Errorf("%w: only drivers and admins can create requests", apperrors.ErrForbidden)
	}
	if payload.ProblemDescription == "" {
		return nil, fmt.Errorf("%w: problem_description is required", apperrors.ErrValidation)
	}
	if payload.Address == "" {
		return nil, fmt.Errorf("%w: address is required", apperrors.ErrValidation)
	}

	now := time.Now()
	request := &models.ServiceRequest{
		ID:                 uuid.New(),
		ProblemDescription: payload.ProblemDescription,
		Address:            payload.Address,
		Status:             models.StatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if actor.Role == models.RoleDriver {
		driverID := actor.UserID
		request.DriverID = &driverID
	}

	// Geocoding is best effort. A request with no coordinates is still
	// actionable through its address text.
	if location, err := u.gw.Geocode(ctx, payload.Address); err != nil {
		logger.Warn("Failed to geocode request address",
			logger.String("address", payload.Address),
			logger.Err(err))
	} else {
		request.Latitude = &location.Latitude
		request.Longitude = &location.Longitude
		hash := utils.EncodeLocation(location.Latitude, location.Longitude)
		request.Geohash = &hash
	}

	if err := u.repo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create service request: %w", err)
	}

	if err := u.gw.PublishRequestCreated(ctx, request); err != nil {
		logger.Error("Failed to publish request created event",
			logger.String("request_id", request.ID.String()),
			logger.Err(err))
	}

	return request, nil
}

// Accept claims a pending request for the calling mechanic. Exactly one
// of concurrent accepts succeeds; the rest get a conflict.
func (u *RequestUC) Accept(ctx context.Context, actor models.Actor, requestID uuid.UUID) (*models.ServiceRequest, error) {
	mechanic, err := u.resolveMechanic(ctx, actor)
	if err != nil {
		return nil, err
	}

	request, err := u.repo.Accept(ctx, requestID, mechanic.ID)
	if err != nil {
		return nil, err
	}

	u.publishStatus(ctx, request)
	return request, nil
}

// UpdateStatus moves an assigned request along its lifecycle. Only the
// assigned mechanic can transition it, and only forward.
func (u *RequestUC) UpdateStatus(ctx context.Context, actor models.Actor, requestID uuid.UUID, status string) (*models.ServiceRequest, error) {
	fromStatus, ok := allowedTransitions[status]
	if !ok {
		return nil, fmt.Errorf("%w: invalid status %q", apperrors.ErrValidation, status)
	}

	mechanic, err := u.resolveMechanic(ctx, actor)
	if err != nil {
		return nil, err
	}

	request, err := u.repo.UpdateStatus(ctx, requestID, mechanic.ID, fromStatus, status)
	if err != nil {
		return nil, err
	}

	u.publishStatus(ctx, request)
	return request, nil
}

func (u *RequestUC) resolveMechanic(ctx context.Context, actor models.Actor) (*models.Mechanic, error) {
	if actor.Role != models.RoleMechanic {
		return nil, fmt.Errorf("%w: mechanic role required", apperrors.ErrForbidden)
	}
	mechanic, err := u.mechanics.GetByUserID(ctx, actor.UserID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("%w: mechanic profile not found", apperrors.ErrForbidden)
	}
	if err != nil {
		return nil, err
	}
	return mechanic, nil
}

func (u *RequestUC) publishStatus(ctx context.Context, request *models.ServiceRequest) {
	event := &models.RequestStatusEvent{
		RequestID:  request.ID,
		Status:     request.Status,
		MechanicID: request.MechanicID,
	}
	if err := u.gw.PublishRequestStatus(ctx, event); err != nil {
		logger.Error("Failed to publish request status event",
			logger.String("request_id", request.ID.String()),
			logger.String("status", request.Status),
			logger.Err(err))
	}
}
