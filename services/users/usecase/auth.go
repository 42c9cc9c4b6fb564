package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/driveaid/driveaid/internal/pkg/apperrors"
	jwtpkg "github.com/driveaid/driveaid/internal/pkg/jwt"
	"github.com/driveaid/driveaid/internal/pkg/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// Register creates a new account. The role is fixed at creation; an empty
// role defaults to driver.
func (u *UserUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if req.FullName == "" || req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: full_name, email and password are required", apperrors.ErrValidation)
	}

	role := req.Role
	if role == "" {
		role = models.RoleDriver
	}
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, role)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := u.repo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: user exists", apperrors.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New(),
		FullName:     req.FullName,
		Email:        email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.repo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and issues a signed token
func (u *UserUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", apperrors.ErrValidation)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := u.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrValidation)
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Role, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// GetUserByID retrieves a user by id
func (u *UserUC) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := u.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}
