package hub

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/parlaydev/betledger/pkg/models"
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

	// Buffer size for outbound messages
	sendBufferSize = 32
)

// Client is one WebSocket connection to the stats feed
type Client struct {
	ID     string
	conn   *websocket.Conn
	send   chan models.StatsUpdate
	hub    *Hub
	logger *logrus.Logger
}

// NewClient wraps an upgraded connection
func NewClient(id string, conn *websocket.Conn, h *Hub, logger *logrus.Logger) *Client {
	return &Client{
		ID:     id,
		conn:   conn,
		send:   make(chan models.StatsUpdate, sendBufferSize),
		hub:    h,
		logger: logger,
	}
}

// TrySend queues an update without blocking. Returns false when the
// client's buffer is full.
func (c *Client) TrySend(update models.StatsUpdate) bool {
	select {
	case c.send <- update:
		return true
	default:
		return false
	}
}

// ReadPump drains inbound frames to keep the connection's read
// deadline fresh. The stats feed is one-way, so payloads are ignored.
func (c *Client) ReadPump() {
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
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.WithField("client_id", c.ID).WithError(err).Debug("unexpected close")
			}
			return
		}
	}
}

// WritePump pushes queued updates and pings to the connection
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case update, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(update); err != nil {
				c.logger.WithField("client_id", c.ID).WithError(err).Debug("write error")
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
