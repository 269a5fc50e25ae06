package handlers

import (
	"context"
	"net/http"

	"github.com/XavierBriggs/propboard/internal/hub"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins in development
		return true
	},
}

// WSHandler upgrades connections and attaches them to the hub
type WSHandler struct {
	hub *hub.Hub
	ctx context.Context
}

// NewWSHandler creates a new websocket handler. The context bounds
// client pump lifetimes, not individual requests.
func NewWSHandler(h *hub.Hub, ctx context.Context) *WSHandler {
	return &WSHandler{hub: h, ctx: ctx}
}

// HandleWebSocket upgrades HTTP connections to WebSocket
func (h *WSHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	clientID := uuid.New().String()
	c := hub.NewClient(clientID, conn, h.hub)

	h.hub.Register(c)

	// Use handler context, not request context
	go c.WritePump(h.ctx)
	go c.ReadPump(h.ctx)
}
