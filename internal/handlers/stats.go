package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/parlaydev/betledger/pkg/analytics"
	"github.com/parlaydev/betledger/pkg/bankroll"
	"github.com/parlaydev/betledger/pkg/models"
)

// GetBankrollStats returns the aggregate bankroll view
func (h *Handler) GetBankrollStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	snapshot, err := h.store.Snapshot(ctx)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to load snapshot", err)
		return
	}

	h.respondJSON(w, http.StatusOK, bankroll.Stats(snapshot.Deposits, snapshot.Bets))
}

// GetAdvancedStats returns streak, recency, and grouping analytics
func (h *Handler) GetAdvancedStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	bets, err := h.store.ListBets(ctx, models.BetFilters{})
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to retrieve bets", err)
		return
	}

	h.respondJSON(w, http.StatusOK, analytics.AdvancedStats(bets))
}

// GetBankrollHistory returns the cumulative balance series
func (h *Handler) GetBankrollHistory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	snapshot, err := h.store.Snapshot(ctx)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to load snapshot", err)
		return
	}

	history := bankroll.History(sumDeposits(snapshot.Deposits), snapshot.Bets)
	h.respondJSON(w, http.StatusOK, map[string]any{
		"history": history,
		"count":   len(history),
	})
}

// GetOverview returns everything the dashboard needs in one payload
func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	snapshot, err := h.store.Snapshot(ctx)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to load snapshot", err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"bankroll": bankroll.Stats(snapshot.Deposits, snapshot.Bets),
		"books":    bankroll.BookBalances(snapshot.Bets, snapshot.Deposits),
		"advanced": analytics.AdvancedStats(snapshot.Bets),
		"history":  bankroll.History(sumDeposits(snapshot.Deposits), snapshot.Bets),
	})
}

// GetBooks returns per-book balances, including books with no activity
func (h *Handler) GetBooks(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	snapshot, err := h.store.Snapshot(ctx)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to load snapshot", err)
		return
	}

	books := bankroll.BookBalances(snapshot.Bets, snapshot.Deposits)
	h.respondJSON(w, http.StatusOK, map[string]any{
		"books": books,
		"count": len(books),
	})
}

// GetDeposits returns the raw deposit records
func (h *Handler) GetDeposits(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	deposits, err := h.store.ListDeposits(ctx)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to retrieve deposits", err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"deposits": deposits,
		"count":    len(deposits),
	})
}

// SetDeposit sets the net deposited amount for one sportsbook.
// Negative values are allowed; withdrawals can exceed deposits.
func (h *Handler) SetDeposit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	book, ok := models.CanonicalBook(chi.URLParam(r, "book"))
	if !ok {
		h.respondError(w, http.StatusBadRequest, "unknown sportsbook", nil)
		return
	}

	var req models.DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	deposit := models.BookDeposit{Sportsbook: book, Amount: req.Amount}
	if err := h.store.SetDeposit(ctx, deposit); err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to set deposit", err)
		return
	}

	h.afterMutation(ctx)
	h.respondJSON(w, http.StatusOK, deposit)
}

func sumDeposits(deposits []models.BookDeposit) decimal.Decimal {
	total := decimal.Zero
	for _, d := range deposits {
		total = total.Add(d.Amount)
	}
	return total
}
