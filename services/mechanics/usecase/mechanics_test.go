package usecase

import (
	"context"
	"testing"

	"github.com/driveaid/driveaid/internal/pkg/apperrors"
	"github.com/driveaid/driveaid/internal/pkg/models"
	"github.com/driveaid/driveaid/internal/utils"
	"github.com/driveaid/driveaid/services/mechanics/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUC(t *testing.T) (*MechanicUC, *mocks.MockMechanicRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockMechanicRepo(ctrl)
	return NewMechanicUC(repo), repo
}

func float64Ptr(v float64) *float64 { return &v }

func TestUpsertProfileComputesGeohash(t *testing.T) {
	uc, repo := newTestUC(t)

	userID := uuid.New()
	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, mechanic *models.Mechanic) error {
			assert.Equal(t, userID, mechanic.UserID)
			assert.Equal(t, "Bengkel Jaya", mechanic.ShopName)
			assert.ElementsMatch(t, []string{"tire", "battery"}, []string(mechanic.Services))
			require.NotNil(t, mechanic.Geohash)
			assert.Equal(t, utils.EncodeLocation(-6.2088, 106.8456), *mechanic.Geohash)
			return nil
		})

	mechanic, err := uc.UpsertProfile(context.Background(), userID, &models.MechanicUpsertRequest{
		ShopName:  "Bengkel Jaya",
		Services:  []string{"tire", "battery"},
		Latitude:  float64Ptr(-6.2088),
		Longitude: float64Ptr(106.8456),
	})
	require.NoError(t, err)
	assert.False(t, mechanic.IsVerified)
}

func TestUpsertProfileWithoutLocation(t *testing.T) {
	uc, repo := newTestUC(t)

	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, mechanic *models.Mechanic) error {
			assert.Nil(t, mechanic.Geohash)
			return nil
		})

	_, err := uc.UpsertProfile(context.Background(), uuid.New(), &models.MechanicUpsertRequest{
		ShopName: "Bengkel Baru",
	})
	require.NoError(t, err)
}

func TestUpsertProfileValidation(t *testing.T) {
	uc, _ := newTestUC(t)

	_, err := uc.UpsertProfile(context.Background(), uuid.New(), &models.MechanicUpsertRequest{})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = uc.UpsertProfile(context.Background(), uuid.New(), &models.MechanicUpsertRequest{
		ShopName: "Bengkel",
		Latitude: float64Ptr(-6.2),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestVerify(t *testing.T) {
	uc, repo := newTestUC(t)

	mechanicID := uuid.New()
	verified := &models.Mechanic{ID: mechanicID, IsVerified: true}
	repo.EXPECT().SetVerified(gomock.Any(), mechanicID, true).Return(verified, nil)

	mechanic, err := uc.Verify(context.Background(), mechanicID, true)
	require.NoError(t, err)
	assert.True(t, mechanic.IsVerified)
}

func TestNearbyValidation(t *testing.T) {
	uc, _ := newTestUC(t)

	_, err := uc.Nearby(context.Background(), -6.2, 106.8, 0)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = uc.Nearby(context.Background(), -6.2, 106.8, -5)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestNearbyDelegates(t *testing.T) {
	uc, repo := newTestUC(t)

	expected := []models.NearbyMechanic{{DistanceKm: 1.2}}
	repo.EXPECT().Nearby(gomock.Any(), -6.2, 106.8, 10.0).Return(expected, nil)

	nearby, err := uc.Nearby(context.Background(), -6.2, 106.8, 10)
	require.NoError(t, err)
	assert.Equal(t, expected, nearby)
}
