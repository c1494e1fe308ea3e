// Package handlers implements the HTTP API. Every mutation recomputes
// derived stats, broadcasts them to websocket clients, and refreshes
// the Redis mirror when one is configured.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/parlaydev/betledger/internal/cache"
	"github.com/parlaydev/betledger/internal/hub"
	"github.com/parlaydev/betledger/internal/notify"
	"github.com/parlaydev/betledger/internal/slipscan"
	"github.com/parlaydev/betledger/internal/store"
	"github.com/parlaydev/betledger/pkg/bankroll"
	"github.com/parlaydev/betledger/pkg/models"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	store     store.Store
	hub       *hub.Hub
	mirror    *cache.Mirror
	notifier  *notify.SlackNotifier
	extractor slipscan.Extractor
	logger    *logrus.Logger
	validate  *validator.Validate
}

// NewHandler creates a handler with its dependencies. mirror and
// extractor may be nil when their features are not configured.
func NewHandler(s store.Store, h *hub.Hub, mirror *cache.Mirror, notifier *notify.SlackNotifier, extractor slipscan.Extractor, logger *logrus.Logger) *Handler {
	return &Handler{
		store:     s,
		hub:       h,
		mirror:    mirror,
		notifier:  notifier,
		extractor: extractor,
		logger:    logger,
		validate:  validator.New(),
	}
}

// HealthCheck returns the health status of the service
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.respondError(w, http.StatusServiceUnavailable, "database unhealthy", err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"service":   "betledger",
		"clients":   h.hub.ClientCount(),
	})
}

// afterMutation recomputes derived stats from the full dataset,
// fans them out to websocket clients, and refreshes the mirror.
// The mutation itself has already committed, so failures here are
// logged rather than surfaced to the caller.
func (h *Handler) afterMutation(ctx context.Context) models.BankrollState {
	snapshot, err := h.store.Snapshot(ctx)
	if err != nil {
		h.logger.WithError(err).Warn("failed to load snapshot for stats refresh")
		return models.BankrollState{}
	}

	stats := bankroll.Stats(snapshot.Deposits, snapshot.Bets)
	books := bankroll.BookBalances(snapshot.Bets, snapshot.Deposits)

	h.hub.Broadcast(models.StatsUpdate{
		Type:      "stats_update",
		Bankroll:  stats,
		Books:     books,
		Timestamp: time.Now().UTC(),
	})

	if h.mirror != nil {
		go func() {
			mctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := h.mirror.Push(mctx, snapshot); err != nil {
				h.logger.WithError(err).Warn("failed to mirror snapshot")
			}
		}()
	}

	return stats
}

// Helper functions

func parseIntParam(r *http.Request, param string, defaultValue int) int {
	valueStr := r.URL.Query().Get(param)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.WithError(err).Error("error encoding response")
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		h.logger.WithError(err).Error(message)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errResp := models.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	}
	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		h.logger.WithError(err).Error("error encoding error response")
	}
}
