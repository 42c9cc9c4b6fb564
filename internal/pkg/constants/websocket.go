package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Chat events
	EventJoinRoom       = "join_room"
	EventLeaveRoom      = "leave_room"
	EventSendMessage    = "send_message"
	EventReceiveMessage = "receive_message"

	// Request lifecycle events
	EventNewRequest    = "request:new"
	EventRequestUpdate = "request:update"
)

// WebSocket error codes
const (
	ErrorInvalidFormat    = "invalid_format"
	ErrorValidationFailed = "validation_failed"
	ErrorUnauthorized     = "unauthorized"
	ErrorInternalError    = "internal_error"
	ErrorRoomNotJoined    = "room_not_joined"
)
