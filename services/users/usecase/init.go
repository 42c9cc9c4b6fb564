package usecase

import (
	"github.com/driveaid/driveaid/internal/pkg/models"
	"github.com/driveaid/driveaid/services/users"
)

// UserUC implements the user usecase
type UserUC struct {
	repo users.UserRepo
	cfg  *models.Config
}

// NewUserUC creates a new user usecase
func NewUserUC(repo users.UserRepo, cfg *models.Config) *UserUC {
	return &UserUC{
		repo: repo,
		cfg:  cfg,
	}
}
