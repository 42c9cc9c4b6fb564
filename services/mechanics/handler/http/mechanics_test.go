package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/driveaid/driveaid/internal/pkg/apperrors"
	"github.com/driveaid/driveaid/internal/pkg/models"
	"github.com/driveaid/driveaid/services/mechanics/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mechanicContext(t *testing.T, e *echo.Echo, method, path, body string, actor models.Actor) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", actor.UserID)
	c.Set("user_role", actor.Role)
	return c, rec
}

func TestGetMeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMechanicUC(ctrl)
	handler := NewMechanicHandler(mockUC)
	e := echo.New()

	actor := models.Actor{UserID: uuid.New(), Role: models.RoleMechanic}
	mockUC.EXPECT().
		GetProfile(gomock.Any(), actor.UserID).
		Return(&models.Mechanic{ID: uuid.New(), UserID: actor.UserID, ShopName: "Bengkel Jaya"}, nil)

	c, rec := mechanicContext(t, e, http.MethodGet, "/mechanics/me", "", actor)

	require.NoError(t, handler.GetMe(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bengkel Jaya")
}

func TestGetMeHandlerNoProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMechanicUC(ctrl)
	handler := NewMechanicHandler(mockUC)
	e := echo.New()

	actor := models.Actor{UserID: uuid.New(), Role: models.RoleMechanic}
	mockUC.EXPECT().
		GetProfile(gomock.Any(), actor.UserID).
		Return(nil, fmt.Errorf("%w: mechanic profile not found", apperrors.ErrNotFound))

	c, rec := mechanicContext(t, e, http.MethodGet, "/mechanics/me", "", actor)

	require.NoError(t, handler.GetMe(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpsertMeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMechanicUC(ctrl)
	handler := NewMechanicHandler(mockUC)
	e := echo.New()

	actor := models.Actor{UserID: uuid.New(), Role: models.RoleMechanic}
	lat, lng := -6.2088, 106.8456

	mockUC.EXPECT().
		UpsertProfile(gomock.Any(), actor.UserID, &models.MechanicUpsertRequest{
			ShopName:  "Bengkel Jaya",
			Services:  []string{"tires", "battery"},
			Latitude:  &lat,
			Longitude: &lng,
		}).
		Return(&models.Mechanic{ID: uuid.New(), UserID: actor.UserID, ShopName: "Bengkel Jaya"}, nil)

	c, rec := mechanicContext(t, e, http.MethodPut, "/mechanics/me",
		`{"shop_name":"Bengkel Jaya","services":["tires","battery"],"latitude":-6.2088,"longitude":106.8456}`, actor)

	require.NoError(t, handler.UpsertMe(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bengkel Jaya")
}

func TestVerifyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMechanicUC(ctrl)
	handler := NewMechanicHandler(mockUC)
	e := echo.New()

	actor := models.Actor{UserID: uuid.New(), Role: models.RoleAdmin}
	mechanicID := uuid.New()

	mockUC.EXPECT().
		Verify(gomock.Any(), mechanicID, true).
		Return(&models.Mechanic{ID: mechanicID, IsVerified: true}, nil)

	c, rec := mechanicContext(t, e, http.MethodPut, "/mechanics/"+mechanicID.String()+"/verify",
		`{"is_verified":true}`, actor)
	c.SetParamNames("id")
	c.SetParamValues(mechanicID.String())

	require.NoError(t, handler.Verify(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"is_verified":true`)
}

func TestNearbyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMechanicUC(ctrl)
	handler := NewMechanicHandler(mockUC)
	e := echo.New()

	actor := models.Actor{UserID: uuid.New(), Role: models.RoleDriver}
	mockUC.EXPECT().
		Nearby(gomock.Any(), -6.2088, 106.8456, 5.0).
		Return([]models.NearbyMechanic{
			{Mechanic: models.Mechanic{ID: uuid.New(), ShopName: "Bengkel Jaya"}, DistanceKm: 1.2},
		}, nil)

	c, rec := mechanicContext(t, e, http.MethodGet, "/mechanics/nearby?lat=-6.2088&lng=106.8456&radius_km=5", "", actor)

	require.NoError(t, handler.Nearby(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "distance_km")
}

func TestNearbyHandlerMissingCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewMechanicHandler(mocks.NewMockMechanicUC(ctrl))
	e := echo.New()

	actor := models.Actor{UserID: uuid.New(), Role: models.RoleDriver}
	c, rec := mechanicContext(t, e, http.MethodGet, "/mechanics/nearby", "", actor)

	require.NoError(t, handler.Nearby(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
