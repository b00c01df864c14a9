package ws

import (
	"sync"

	"agenthub_backend/internal/logger"
)

// pushMessage is the wire envelope for server-initiated events.
type pushMessage struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Hub tracks live connections in rooms keyed by user id. A user may
// hold several sessions (tabs); a push goes to all of them. There is
// no queue or redelivery: a user with no open session misses the push
// and reads the persisted notification on the next poll.
type Hub struct {
	rooms      map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.rooms[client.UserID] == nil {
				h.rooms[client.UserID] = make(map[*Client]struct{})
			}
			h.rooms[client.UserID][client] = struct{}{}
			h.mu.Unlock()
			logger.Debug("ws client registered", "user_id", client.UserID)

		case client := <-h.unregister:
			h.mu.Lock()
			if room, ok := h.rooms[client.UserID]; ok {
				if _, ok := room[client]; ok {
					delete(room, client)
					close(client.Send)
					if len(room) == 0 {
						delete(h.rooms, client.UserID)
					}
				}
			}
			h.mu.Unlock()
			logger.Debug("ws client unregistered", "user_id", client.UserID)
		}
	}
}

// Push emits an event to every session in the user's room. Best
// effort: a full send buffer drops the client, an empty room is a
// no-op.
func (h *Hub) Push(userID string, event string, payload any) {
	msg := pushMessage{Event: event, Data: payload}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.rooms[userID] {
		select {
		case client.Send <- msg:
		default:
			// Slow consumer, detach it
			go func(c *Client) {
				h.unregister <- c
			}(client)
		}
	}
}

// IsConnected reports whether the user has at least one live session.
func (h *Hub) IsConnected(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[userID]) > 0
}

// ClientCount returns the total number of live sessions.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	total := 0
	for _, room := range h.rooms {
		total += len(room)
	}
	return total
}
