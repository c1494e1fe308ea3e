package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/parlaydev/betledger/internal/ingest"
	"github.com/parlaydev/betledger/internal/store"
	"github.com/parlaydev/betledger/pkg/analytics"
	"github.com/parlaydev/betledger/pkg/models"
)

// CreateBet records a new pending wager
func (h *Handler) CreateBet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req models.CreateBetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if !req.Wager.IsPositive() {
		h.respondError(w, http.StatusBadRequest, "wager must be positive", nil)
		return
	}

	bet := ingest.NewBet(req, time.Now().UTC())
	if err := h.store.CreateBet(ctx, bet); err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to create bet", err)
		return
	}

	h.afterMutation(ctx)
	h.respondJSON(w, http.StatusCreated, bet)
}

// GetBets retrieves bets with optional filters
// Query params: status, sport, book, limit, offset
func (h *Handler) GetBets(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filters := models.BetFilters{
		Status:     r.URL.Query().Get("status"),
		Sport:      r.URL.Query().Get("sport"),
		Sportsbook: r.URL.Query().Get("book"),
		Limit:      parseIntParam(r, "limit", 100),
		Offset:     parseIntParam(r, "offset", 0),
	}
	if filters.Limit > 500 {
		filters.Limit = 500
	}

	bets, err := h.store.ListBets(ctx, filters)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to retrieve bets", err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"bets":   bets,
		"count":  len(bets),
		"limit":  filters.Limit,
		"offset": filters.Offset,
	})
}

// GetBet retrieves a single bet by ID
func (h *Handler) GetBet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	betID := chi.URLParam(r, "betID")
	if betID == "" {
		h.respondError(w, http.StatusBadRequest, "bet id is required", nil)
		return
	}

	bet, err := h.store.GetBet(ctx, betID)
	if errors.Is(err, store.ErrNotFound) {
		h.respondError(w, http.StatusNotFound, "bet not found", nil)
		return
	}
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to retrieve bet", err)
		return
	}

	h.respondJSON(w, http.StatusOK, bet)
}

// UpdateBet replaces the editable fields of a bet
func (h *Handler) UpdateBet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	betID := chi.URLParam(r, "betID")
	bet, err := h.store.GetBet(ctx, betID)
	if errors.Is(err, store.ErrNotFound) {
		h.respondError(w, http.StatusNotFound, "bet not found", nil)
		return
	}
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to retrieve bet", err)
		return
	}

	var req models.UpdateBetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if !req.Wager.IsPositive() {
		h.respondError(w, http.StatusBadRequest, "wager must be positive", nil)
		return
	}

	ingest.ApplyEdit(&bet, req)
	if err := h.store.UpdateBet(ctx, bet); err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to update bet", err)
		return
	}

	h.afterMutation(ctx)
	h.respondJSON(w, http.StatusOK, bet)
}

// UpdateBetStatus settles or reopens a bet
func (h *Handler) UpdateBetStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	betID := chi.URLParam(r, "betID")

	var req models.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	status, err := models.ParseStatus(req.Status)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	bet, err := h.store.UpdateBetStatus(ctx, betID, status)
	if errors.Is(err, store.ErrNotFound) {
		h.respondError(w, http.StatusNotFound, "bet not found", nil)
		return
	}
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to update status", err)
		return
	}

	stats := h.afterMutation(ctx)

	if status.Settled() && h.notifier.Enabled() {
		go func() {
			nctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			streak := 0
			if bets, err := h.store.ListBets(nctx, models.BetFilters{}); err == nil {
				streak = analytics.AdvancedStats(bets).CurrentStreak
			}
			if err := h.notifier.BetSettled(nctx, bet, stats.CurrentBalance, streak); err != nil {
				h.logger.WithError(err).Warn("failed to send settlement notification")
			}
		}()
	}

	h.respondJSON(w, http.StatusOK, bet)
}

// DeleteBet removes a bet entirely
func (h *Handler) DeleteBet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	betID := chi.URLParam(r, "betID")
	err := h.store.DeleteBet(ctx, betID)
	if errors.Is(err, store.ErrNotFound) {
		h.respondError(w, http.StatusNotFound, "bet not found", nil)
		return
	}
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to delete bet", err)
		return
	}

	h.afterMutation(ctx)
	h.respondJSON(w, http.StatusOK, map[string]any{"deleted": betID})
}
