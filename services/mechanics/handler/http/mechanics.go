package http

import (
	"net/http"
	"strconv"

	"github.com/driveaid/driveaid/internal/pkg/logger"
	"github.com/driveaid/driveaid/internal/pkg/middleware"
	"github.com/driveaid/driveaid/internal/pkg/models"
	"github.com/driveaid/driveaid/internal/utils"
	"github.com/driveaid/driveaid/services/mechanics"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// MechanicHandler handles HTTP requests for mechanic profiles
type MechanicHandler struct {
	mechanicUC mechanics.MechanicUC
}

// NewMechanicHandler creates a new mechanic handler
func NewMechanicHandler(mechanicUC mechanics.MechanicUC) *MechanicHandler {
	return &MechanicHandler{mechanicUC: mechanicUC}
}

// GetMe handles GET /mechanics/me
func (h *MechanicHandler) GetMe(c echo.Context) error {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	mechanic, err := h.mechanicUC.GetProfile(c.Request().Context(), actor.UserID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Mechanic profile retrieved", mechanic)
}

// UpsertMe handles PUT /mechanics/me
func (h *MechanicHandler) UpsertMe(c echo.Context) error {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.MechanicUpsertRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	mechanic, err := h.mechanicUC.UpsertProfile(c.Request().Context(), actor.UserID, &req)
	if err != nil {
		logger.Warn("Mechanic profile upsert failed",
			logger.String("user_id", actor.UserID.String()),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Mechanic profile saved", mechanic)
}

// Verify handles PUT /mechanics/:id/verify
func (h *MechanicHandler) Verify(c echo.Context) error {
	mechanicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid mechanic ID")
	}

	var req models.VerifyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	mechanic, err := h.mechanicUC.Verify(c.Request().Context(), mechanicID, req.IsVerified)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Mechanic verification updated", mechanic)
}

// List handles GET /mechanics
func (h *MechanicHandler) List(c echo.Context) error {
	var verified *bool
	if raw := c.QueryParam("verified"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid verified filter")
		}
		verified = &value
	}

	list, err := h.mechanicUC.List(c.Request().Context(), verified)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Mechanics retrieved", list)
}

// Nearby handles GET /mechanics/nearby
func (h *MechanicHandler) Nearby(c echo.Context) error {
	latitude, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid lat parameter")
	}
	longitude, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid lng parameter")
	}

	radiusKm := 10.0
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid radius_km parameter")
		}
	}

	nearby, err := h.mechanicUC.Nearby(c.Request().Context(), latitude, longitude, radiusKm)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby mechanics retrieved", nearby)
}
