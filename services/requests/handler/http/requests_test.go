package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/driveaid/driveaid/internal/pkg/apperrors"
	"github.com/driveaid/driveaid/internal/pkg/models"
	"github.com/driveaid/driveaid/services/requests/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authedContext(t *testing.T, e *echo.Echo, method, path, body string, actor models.Actor) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", actor.UserID)
	c.Set("user_role", actor.Role)
	return c, rec
}

func TestListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRequestUC(ctrl)
	handler := NewRequestHandler(mockUC)
	e := echo.New()

	actor := models.Actor{UserID: uuid.New(), Role: models.RoleAdmin}
	mockUC.EXPECT().
		List(gomock.Any(), actor).
		Return([]models.ServiceRequest{{ID: uuid.New(), Status: models.StatusPending}}, nil)

	c, rec := authedContext(t, e, http.MethodGet, "/service-requests", "", actor)

	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), models.StatusPending)
}

func TestListHandlerUnauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewRequestHandler(mocks.NewMockRequestUC(ctrl))
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/service-requests", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRequestUC(ctrl)
	handler := NewRequestHandler(mockUC)
	e := echo.New()

	actor := models.Actor{UserID: uuid.New(), Role: models.RoleDriver}
	created := &models.ServiceRequest{ID: uuid.New(), ProblemDescription: "flat tire", Status: models.StatusPending}

	mockUC.EXPECT().
		Create(gomock.Any(), actor, &models.CreateRequestPayload{
			ProblemDescription: "flat tire",
			Address:            "Jl. Sudirman 1, Jakarta",
		}).
		Return(created, nil)

	c, rec := authedContext(t, e, http.MethodPost, "/service-requests",
		`{"problem_description":"flat tire","address":"Jl. Sudirman 1, Jakarta"}`, actor)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "flat tire")
}

func TestAcceptHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRequestUC(ctrl)
	handler := NewRequestHandler(mockUC)
	e := echo.New()

	actor := models.Actor{UserID: uuid.New(), Role: models.RoleMechanic}
	requestID := uuid.New()

	mockUC.EXPECT().
		Accept(gomock.Any(), actor, requestID).
		Return(&models.ServiceRequest{ID: requestID, Status: models.StatusAccepted}, nil)

	c, rec := authedContext(t, e, http.MethodPost, "/service-requests/"+requestID.String()+"/accept", "", actor)
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())

	require.NoError(t, handler.Accept(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), models.StatusAccepted)
}

func TestAcceptHandlerConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRequestUC(ctrl)
	handler := NewRequestHandler(mockUC)
	e := echo.New()

	actor := models.Actor{UserID: uuid.New(), Role: models.RoleMechanic}
	requestID := uuid.New()

	mockUC.EXPECT().
		Accept(gomock.Any(), actor, requestID).
		Return(nil, fmt.Errorf("%w: request already accepted", apperrors.ErrConflict))

	c, rec := authedContext(t, e, http.MethodPost, "/service-requests/"+requestID.String()+"/accept", "", actor)
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())

	require.NoError(t, handler.Accept(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAcceptHandlerInvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewRequestHandler(mocks.NewMockRequestUC(ctrl))
	e := echo.New()

	actor := models.Actor{UserID: uuid.New(), Role: models.RoleMechanic}
	c, rec := authedContext(t, e, http.MethodPost, "/service-requests/not-a-uuid/accept", "", actor)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, handler.Accept(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRequestUC(ctrl)
	handler := NewRequestHandler(mockUC)
	e := echo.New()

	actor := models.Actor{UserID: uuid.New(), Role: models.RoleMechanic}
	requestID := uuid.New()

	mockUC.EXPECT().
		UpdateStatus(gomock.Any(), actor, requestID, models.StatusCompleted).
		Return(&models.ServiceRequest{ID: requestID, Status: models.StatusCompleted}, nil)

	c, rec := authedContext(t, e, http.MethodPost, "/service-requests/"+requestID.String()+"/status",
		`{"status":"Completed"}`, actor)
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())

	require.NoError(t, handler.UpdateStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), models.StatusCompleted)
}
