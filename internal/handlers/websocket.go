package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/fbrandt/pigeon/internal/broadcast"
)

// WebSocketHandler upgrades connections and hands them to the hub. Clients
// pick their topics themselves with subscribe/unsubscribe commands: one
// conversation (or global-room) topic for the chat they are viewing, plus
// their own user topic for out-of-band notifications.
type WebSocketHandler struct {
	hub      *broadcast.Hub
	upgrader websocket.Upgrader
}

func NewWebSocketHandler(hub *broadcast.Hub) *WebSocketHandler {
	return &WebSocketHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// TODO: restrict to the frontend origin in prod
				return true
			},
		},
	}
}

func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := broadcast.NewClient(h.hub, conn)

	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
