package nsq

import (
	"github.com/driveaid/driveaid/internal/pkg/constants"
	"github.com/driveaid/driveaid/internal/pkg/logger"
	"github.com/driveaid/driveaid/internal/pkg/models"
	nsqpkg "github.com/driveaid/driveaid/internal/pkg/nsq"
	wspkg "github.com/driveaid/driveaid/internal/pkg/websocket"
)

// EventConsumer bridges NSQ events onto live WebSocket connections.
// New requests go to every client; chat and status events go to the
// request's room.
type EventConsumer struct {
	manager   *wspkg.Manager
	cfg       models.NSQConfig
	consumers []*nsqpkg.Consumer
}

// NewEventConsumer creates the NSQ to WebSocket bridge
func NewEventConsumer(manager *wspkg.Manager, cfg models.NSQConfig) *EventConsumer {
	return &EventConsumer{
		manager: manager,
		cfg:     cfg,
	}
}

// Start subscribes to the request and chat topics
func (ec *EventConsumer) Start() error {
	subscriptions := []struct {
		topic   string
		handler nsqpkg.MessageHandler
	}{
		{constants.TopicRequestCreated, ec.handleRequestCreated},
		{constants.TopicRequestStatus, ec.handleRequestStatus},
		{constants.TopicChatMessage, ec.handleChatMessage},
	}

	for _, sub := range subscriptions {
		consumer, err := nsqpkg.NewConsumer(sub.topic, ec.cfg.Channel, ec.cfg.Address, sub.handler)
		if err != nil {
			ec.Stop()
			return err
		}
		ec.consumers = append(ec.consumers, consumer)
	}
	return nil
}

// Stop shuts down all subscriptions
func (ec *EventConsumer) Stop() {
	for _, consumer := range ec.consumers {
		consumer.Stop()
	}
	ec.consumers = nil
}

func (ec *EventConsumer) handleRequestCreated(message []byte) error {
	var event models.RequestCreatedEvent
	if err := nsqpkg.UnmarshalMessage(message, &event); err != nil {
		return err
	}
	if event.Request == nil {
		logger.Warn("Request created event without request body")
		return nil
	}

	ec.manager.BroadcastAll(constants.EventNewRequest, event.Request)
	return nil
}

func (ec *EventConsumer) handleRequestStatus(message []byte) error {
	var event models.RequestStatusEvent
	if err := nsqpkg.UnmarshalMessage(message, &event); err != nil {
		return err
	}

	ec.manager.BroadcastToRoom(event.RequestID.String(), constants.EventRequestUpdate, event, "")
	return nil
}

func (ec *EventConsumer) handleChatMessage(message []byte) error {
	var event models.ChatMessageEvent
	if err := nsqpkg.UnmarshalMessage(message, &event); err != nil {
		return err
	}
	if event.Message == nil {
		logger.Warn("Chat message event without message body")
		return nil
	}

	id := event.Message.ID
	payload := models.ReceiveMessagePayload{
		ID:         &id,
		RequestID:  event.Message.RequestID.String(),
		SenderID:   event.Message.SenderID.String(),
		Message:    event.Message.Message,
		Optimistic: false,
		CreatedAt:  event.Message.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}
	ec.manager.BroadcastToRoom(payload.RequestID, constants.EventReceiveMessage, payload, "")
	return nil
}
