package jwt

import (
	"testing"
	"time"

	"github.com/driveaid/driveaid/internal/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret-key",
		Expiration: 7 * 24 * 60,
		Issuer:     "driveaid-test",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	tokenString, expiresAt, err := GenerateToken(userID, models.RoleDriver, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(tokenString, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, models.RoleDriver, claims.Role)
	assert.Equal(t, cfg.Issuer, claims.Issuer)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	tokenString, _, err := GenerateToken(uuid.New(), models.RoleMechanic, cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(tokenString, "different-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateTokenExpired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Expiration = -1

	tokenString, _, err := GenerateToken(uuid.New(), models.RoleAdmin, cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(tokenString, cfg.Secret)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateTokenMalformed(t *testing.T) {
	claims, err := ValidateToken("not-a-token", testJWTConfig().Secret)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
