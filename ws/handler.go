package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"agenthub_backend/internal/logger"
	"agenthub_backend/internal/middleware"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Access is gated by the auth middleware, not by origin.
		return true
	},
}

// Handler upgrades authenticated requests into hub sessions.
type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

// ServeWS joins the caller to their own notification room. The user id
// comes from the verified token, never from the request, so a client
// cannot subscribe to someone else's events.
func (h *Handler) ServeWS(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("ws upgrade failed", "user_id", userID, "error", err)
		return
	}

	client := NewClient(h.hub, conn, userID)
	h.hub.register <- client

	go client.WritePump()
	go client.ReadPump()
}
