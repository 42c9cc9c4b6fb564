package constants

// NSQ topics
const (
	TopicRequestCreated = "request.created"
	TopicRequestStatus  = "request.status"
	TopicChatMessage    = "chat.message"
)

// DefaultNSQChannel is the consumer channel used by the realtime fan-out
const DefaultNSQChannel = "driveaid-realtime"
