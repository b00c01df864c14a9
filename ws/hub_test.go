package ws

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(hub *Hub, userID string) *Client {
	return &Client{UserID: userID, Send: make(chan any, 8), hub: hub}
}

func register(t *testing.T, hub *Hub, client *Client) {
	t.Helper()
	hub.register <- client
	require.Eventually(t, func() bool {
		return hub.IsConnected(client.UserID)
	}, time.Second, 5*time.Millisecond)
}

func TestPushReachesAllUserSessions(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	a1 := newTestClient(hub, "user-a")
	a2 := newTestClient(hub, "user-a")
	b := newTestClient(hub, "user-b")
	register(t, hub, a1)
	register(t, hub, a2)
	register(t, hub, b)

	hub.Push("user-a", "notification", map[string]string{"message": "hi"})

	for _, c := range []*Client{a1, a2} {
		select {
		case raw := <-c.Send:
			msg, ok := raw.(pushMessage)
			require.True(t, ok)
			assert.Equal(t, "notification", msg.Event)
		case <-time.After(time.Second):
			t.Fatal("expected a pushed message")
		}
	}

	select {
	case <-b.Send:
		t.Fatal("user-b must not receive user-a events")
	default:
	}
}

func TestPushToEmptyRoomIsNoop(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	assert.NotPanics(t, func() {
		hub.Push("nobody", "notification", nil)
	})
}

func TestUnregisterRemovesSession(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := newTestClient(hub, "user-a")
	register(t, hub, client)
	assert.Equal(t, 1, hub.ClientCount())

	hub.unregister <- client
	require.Eventually(t, func() bool {
		return !hub.IsConnected("user-a")
	}, time.Second, 5*time.Millisecond)
	assert.Zero(t, hub.ClientCount())
}
