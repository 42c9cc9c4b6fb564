package http

import (
	"net/http"

	"github.com/driveaid/driveaid/internal/pkg/logger"
	"github.com/driveaid/driveaid/internal/pkg/middleware"
	"github.com/driveaid/driveaid/internal/pkg/models"
	"github.com/driveaid/driveaid/internal/utils"
	"github.com/driveaid/driveaid/services/requests"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestHandler handles HTTP requests for service requests
type RequestHandler struct {
	requestUC requests.RequestUC
}

// NewRequestHandler creates a new service-request handler
func NewRequestHandler(requestUC requests.RequestUC) *RequestHandler {
	return &RequestHandler{requestUC: requestUC}
}

// List handles GET /service-requests
func (h *RequestHandler) List(c echo.Context) error {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.requestUC.List(c.Request().Context(), actor)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Service requests retrieved", list)
}

// Create handles POST /service-requests
func (h *RequestHandler) Create(c echo.Context) error {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var payload models.CreateRequestPayload
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	request, err := h.requestUC.Create(c.Request().Context(), actor, &payload)
	if err != nil {
		logger.Warn("Service request creation failed",
			logger.String("user_id", actor.UserID.String()),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Service request created", request)
}

// Accept handles POST /service-requests/:id/accept
func (h *RequestHandler) Accept(c echo.Context) error {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	request, err := h.requestUC.Accept(c.Request().Context(), actor, requestID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Service request accepted", request)
}

// UpdateStatus handles POST /service-requests/:id/status
func (h *RequestHandler) UpdateStatus(c echo.Context) error {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	var payload models.UpdateStatusPayload
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	request, err := h.requestUC.UpdateStatus(c.Request().Context(), actor, requestID, payload.Status)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Service request status updated", request)
}
