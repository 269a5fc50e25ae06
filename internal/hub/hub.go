package hub

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// RefreshEvent tells connected clients a new prediction snapshot is live
type RefreshEvent struct {
	Type        string    `json:"type"`
	SnapshotID  string    `json:"snapshot_id"`
	SportKey    string    `json:"sport_key"`
	Predictions int       `json:"predictions"`
	Timestamp   time.Time `json:"timestamp"`
}

// EventTypeRefresh is the only event type currently broadcast
const EventTypeRefresh = "predictions_refresh"

// Hub maintains the set of active clients and fans refresh events out
// to them
type Hub struct {
	clients   map[*Client]bool
	clientsMu sync.RWMutex

	broadcast  chan RefreshEvent
	register   chan *Client
	unregister chan *Client
}

// New creates a hub
func New() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan RefreshEvent, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub's main loop and blocks until ctx is done
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case c := <-h.register:
			h.registerClient(c)

		case c := <-h.unregister:
			h.unregisterClient(c)

		case event := <-h.broadcast:
			h.broadcastEvent(event)
		}
	}
}

// Register adds a client to the hub
func (h *Hub) Register(c *Client) {
	h.register <- c
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(c *Client) {
	h.unregister <- c
}

// Broadcast queues a refresh event for all clients (non-blocking;
// drops when the buffer is full)
func (h *Hub) Broadcast(event RefreshEvent) {
	select {
	case h.broadcast <- event:
	default:
		log.Warn().Msg("broadcast buffer full, dropping event")
	}
}

// ClientCount returns the number of active clients
func (h *Hub) ClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

func (h *Hub) registerClient(c *Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	h.clients[c] = true
	log.Info().Str("client_id", c.ID).Int("total", len(h.clients)).Msg("client connected")
}

func (h *Hub) unregisterClient(c *Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.Send)
		log.Info().Str("client_id", c.ID).Int("total", len(h.clients)).Msg("client disconnected")
	}
}

func (h *Hub) broadcastEvent(event RefreshEvent) {
	h.clientsMu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clientsMu.RUnlock()

	for _, c := range clients {
		if !c.TrySend(event) {
			// Client buffer full - they're too slow, disconnect them
			log.Warn().Str("client_id", c.ID).Msg("client buffer full, disconnecting")
			go h.Unregister(c)
		}
	}
}

func (h *Hub) shutdown() {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	log.Info().Int("clients", len(h.clients)).Msg("shutting down hub")

	for c := range h.clients {
		close(c.Send)
		delete(h.clients, c)
	}
}
