package requests

import (
	"context"

	"github.com/driveaid/driveaid/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/driveaid/driveaid/services/requests RequestGW

// RequestGW defines the service-request gateways interface
type RequestGW interface {
	// NSQ gateway
	PublishRequestCreated(ctx context.Context, request *models.ServiceRequest) error
	PublishRequestStatus(ctx context.Context, event *models.RequestStatusEvent) error

	// Geocoder gateway
	Geocode(ctx context.Context, address string) (*models.Location, error)
}
