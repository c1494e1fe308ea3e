// Package hub fans stats updates out to connected dashboard clients
// over WebSocket. Every mutation to the ledger produces one update and
// every client receives it.
package hub

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/parlaydev/betledger/pkg/models"
)

const broadcastBufferSize = 64

// Hub maintains the set of active clients and broadcasts updates to them
type Hub struct {
	clients   map[*Client]bool
	clientsMu sync.RWMutex

	broadcast  chan models.StatsUpdate
	register   chan *Client
	unregister chan *Client

	logger *logrus.Logger
}

// NewHub creates a hub. Run must be started before clients connect.
func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan models.StatsUpdate, broadcastBufferSize),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

// Run drives the hub's main loop until ctx is cancelled
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

		case update := <-h.broadcast:
			h.broadcastUpdate(update)
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

// Broadcast queues an update for all clients without blocking the
// caller. When the buffer is full the update is dropped; the next
// mutation will carry fresher numbers anyway.
func (h *Hub) Broadcast(update models.StatsUpdate) {
	select {
	case h.broadcast <- update:
	default:
		h.logger.Warn("broadcast buffer full, dropping update")
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
	h.logger.WithFields(logrus.Fields{
		"client_id": c.ID,
		"total":     len(h.clients),
	}).Info("websocket client connected")
}

func (h *Hub) unregisterClient(c *Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
		h.logger.WithFields(logrus.Fields{
			"client_id": c.ID,
			"total":     len(h.clients),
		}).Info("websocket client disconnected")
	}
}

func (h *Hub) broadcastUpdate(update models.StatsUpdate) {
	h.clientsMu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clientsMu.RUnlock()

	for _, c := range clients {
		if !c.TrySend(update) {
			// Client buffer full, they are too slow to keep up
			h.logger.WithField("client_id", c.ID).Warn("client buffer full, disconnecting")
			go h.Unregister(c)
		}
	}
}

func (h *Hub) shutdown() {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	h.logger.WithField("clients", len(h.clients)).Info("shutting down hub")
	for c := range h.clients {
		close(c.send)
		delete(h.clients, c)
	}
}
