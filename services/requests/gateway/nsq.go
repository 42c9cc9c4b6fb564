package gateway

import (
	"context"

	"github.com/driveaid/driveaid/internal/pkg/constants"
	"github.com/driveaid/driveaid/internal/pkg/models"
)

// PublishRequestCreated announces a newly persisted service request
func (g *RequestGW) PublishRequestCreated(ctx context.Context, request *models.ServiceRequest) error {
	event := models.RequestCreatedEvent{
		Request: request,
	}
	return g.producer.Publish(constants.TopicRequestCreated, event)
}

// PublishRequestStatus announces an accept or status transition
func (g *RequestGW) PublishRequestStatus(ctx context.Context, event *models.RequestStatusEvent) error {
	return g.producer.Publish(constants.TopicRequestStatus, event)
}
