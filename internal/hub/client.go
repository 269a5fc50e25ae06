package hub

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 512

	// Buffer size for outbound events
	sendBufferSize = 64
)

// Client represents a WebSocket client connection
type Client struct {
	ID   string
	conn *websocket.Conn
	Send chan RefreshEvent // Exported for hub access
	hub  unregisterer
}

type unregisterer interface {
	Unregister(c *Client)
}

// NewClient creates a client around an upgraded connection
func NewClient(id string, conn *websocket.Conn, h *Hub) *Client {
	return &Client{
		ID:   id,
		conn: conn,
		Send: make(chan RefreshEvent, sendBufferSize),
		hub:  h,
	}
}

// ReadPump drains the connection so keepalives work; clients do not
// send application messages
func (c *Client) ReadPump(ctx context.Context) {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		select {
		case <-ctx.Done():
			return
		default:
			if _, _, err := c.conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Warn().Str("client_id", c.ID).Err(err).Msg("unexpected close")
				}
				return
			}
		}
	}
}

// WritePump pumps events from the hub to the WebSocket connection
func (c *Client) WritePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case event, ok := <-c.Send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(event); err != nil {
				log.Warn().Str("client_id", c.ID).Err(err).Msg("write error")
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// TrySend queues an event for the client (non-blocking).
// Returns false when the client's buffer is full.
func (c *Client) TrySend(event RefreshEvent) bool {
	select {
	case c.Send <- event:
		return true
	default:
		return false
	}
}
