package middleware

import (
	"strings"

	"github.com/driveaid/driveaid/internal/pkg/apperrors"
	jwtpkg "github.com/driveaid/driveaid/internal/pkg/jwt"
	"github.com/driveaid/driveaid/internal/pkg/models"
	"github.com/driveaid/driveaid/internal/utils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// JWTAuthMiddleware validates the bearer credential and attaches the caller's
// identity and role to the echo context.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, err := authenticate(c, config)
			if err != nil {
				return utils.UnauthorizedResponse(c, err.Error())
			}

			c.Set("user_id", actor.UserID)
			c.Set("user_role", actor.Role)

			return next(c)
		}
	}
}

// RequireRole enforces that the authenticated caller holds the given role.
// It must be registered after JWTAuthMiddleware.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			callerRole, ok := c.Get("user_role").(string)
			if !ok {
				return utils.UnauthorizedResponse(c, "missing authentication context")
			}
			if callerRole != role {
				return utils.ForbiddenResponse(c, "insufficient role")
			}
			return next(c)
		}
	}
}

// ActorFromContext returns the caller identity attached by JWTAuthMiddleware
func ActorFromContext(c echo.Context) (models.Actor, error) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return models.Actor{}, apperrors.ErrUnauthorized
	}
	role, ok := c.Get("user_role").(string)
	if !ok {
		return models.Actor{}, apperrors.ErrUnauthorized
	}
	return models.Actor{UserID: userID, Role: role}, nil
}

func authenticate(c echo.Context, config models.JWTConfig) (models.Actor, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return models.Actor{}, apperrors.ErrUnauthorized
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return models.Actor{}, apperrors.ErrUnauthorized
	}

	claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
	if err != nil {
		return models.Actor{}, apperrors.ErrUnauthorized
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return models.Actor{}, apperrors.ErrUnauthorized
	}
	if claims.Role == "" {
		return models.Actor{}, apperrors.ErrUnauthorized
	}

	return models.Actor{UserID: userID, Role: claims.Role}, nil
}
