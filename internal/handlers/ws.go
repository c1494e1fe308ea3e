package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/parlaydev/betledger/internal/hub"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The dashboard runs on a different port locally
		return true
	},
}

// ServeWS upgrades the connection and attaches it to the stats feed
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Warn("websocket upgrade failed")
		return
	}

	c := hub.NewClient(uuid.NewString(), conn, h.hub, h.logger)
	h.hub.Register(c)

	go c.WritePump()
	go c.ReadPump()
}
