package websocket

import (
	"testing"

	"github.com/driveaid/driveaid/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func testManager() *Manager {
	return NewManager(models.JWTConfig{Secret: "test-secret"})
}

func client(userID string) *models.WebSocketClient {
	return &models.WebSocketClient{UserID: userID, Role: models.RoleDriver}
}

func TestAddAndGetClient(t *testing.T) {
	m := testManager()

	m.AddClient(client("user-1"))

	got, ok := m.GetClient("user-1")
	assert.True(t, ok)
	assert.Equal(t, "user-1", got.UserID)

	_, ok = m.GetClient("user-2")
	assert.False(t, ok)
}

func TestJoinAndLeaveRoom(t *testing.T) {
	m := testManager()

	a := client("user-a")
	b := client("user-b")
	m.AddClient(a)
	m.AddClient(b)

	m.JoinRoom("req-1", a)
	m.JoinRoom("req-1", b)
	assert.ElementsMatch(t, []string{"user-a", "user-b"}, m.RoomMembers("req-1"))

	m.LeaveRoom("req-1", "user-a")
	assert.Equal(t, []string{"user-b"}, m.RoomMembers("req-1"))

	m.LeaveRoom("req-1", "user-b")
	assert.Empty(t, m.RoomMembers("req-1"))
}

func TestRemoveClientEvictsFromRooms(t *testing.T) {
	m := testManager()

	a := client("user-a")
	m.AddClient(a)
	m.JoinRoom("req-1", a)
	m.JoinRoom("req-2", a)

	m.RemoveClient("user-a")

	_, ok := m.GetClient("user-a")
	assert.False(t, ok)
	assert.Empty(t, m.RoomMembers("req-1"))
	assert.Empty(t, m.RoomMembers("req-2"))
}

func TestJoinRoomIdempotent(t *testing.T) {
	m := testManager()

	a := client("user-a")
	m.AddClient(a)
	m.JoinRoom("req-1", a)
	m.JoinRoom("req-1", a)

	assert.Equal(t, []string{"user-a"}, m.RoomMembers("req-1"))
}

func TestSendMessageNilConnection(t *testing.T) {
	m := testManager()

	// Clients without an upgraded connection are skipped, not errored.
	err := m.SendMessage(client("user-a"), "ping", nil)
	assert.NoError(t, err)
}
