package usecase

import (
	"github.com/driveaid/driveaid/services/requests"
)

// RequestUC implements the service-request usecase
type RequestUC struct {
	repo      requests.RequestRepo
	gw        requests.RequestGW
	mechanics requests.MechanicResolver
}

// NewRequestUC creates a new service-request usecase
func NewRequestUC(repo requests.RequestRepo, gw requests.RequestGW, mechanics requests.MechanicResolver) *RequestUC {
	return &RequestUC{
		repo:      repo,
		gw:        gw,
		mechanics: mechanics,
	}
}
