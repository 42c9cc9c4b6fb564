package usecase

import (
	"github.com/driveaid/driveaid/services/mechanics"
)

// MechanicUC implements the mechanic usecase
type MechanicUC struct {
	repo mechanics.MechanicRepo
}

// NewMechanicUC creates a new mechanic usecase
func NewMechanicUC(repo mechanics.MechanicRepo) *MechanicUC {
	return &MechanicUC{repo: repo}
}
