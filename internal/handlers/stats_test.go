package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/parlaydev/betledger/pkg/models"
)

func TestGetBankrollStats(t *testing.T) {
	won := seedBet("bet-won", models.StatusWon)

	pending := seedBet("bet-pending", models.StatusPending)
	pending.Wager = decimal.RequireFromString("25")
	pending.CreatedAt = won.CreatedAt.Add(-time.Hour)

	mock := &mockStore{
		bets: []models.Bet{won, pending},
		deposits: []models.BookDeposit{
			{Sportsbook: models.BookDraftKings, Amount: decimal.RequireFromString("1000")},
		},
	}
	h := newTestHandler(mock, nil)

	req := httptest.NewRequest("GET", "/api/v1/stats/bankroll", nil)
	w := httptest.NewRecorder()
	h.GetBankrollStats(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var stats models.BankrollState
	require.NoError(t, json.NewDecoder(w.Body).Decode(&stats))
	require.True(t, stats.StartingBalance.Equal(decimal.RequireFromString("1000")))

	// 1000 deposited, +50 won, -25 still at risk
	require.True(t, stats.CurrentBalance.Equal(decimal.RequireFromString("1025")),
		"current balance = %s", stats.CurrentBalance)
	require.Equal(t, 2, stats.TotalBets)
	require.Equal(t, 1, stats.Wins)
	require.True(t, stats.TotalWagered.Equal(decimal.RequireFromString("55")),
		"total wagered = %s", stats.TotalWagered)
}

func TestGetAdvancedStats(t *testing.T) {
	first := seedBet("bet-1", models.StatusWon)
	second := seedBet("bet-2", models.StatusWon)
	second.CreatedAt = first.CreatedAt.Add(-time.Hour)

	mock := &mockStore{bets: []models.Bet{first, second}}
	h := newTestHandler(mock, nil)

	req := httptest.NewRequest("GET", "/api/v1/stats/advanced", nil)
	w := httptest.NewRecorder()
	h.GetAdvancedStats(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var stats models.AdvancedStats
	require.NoError(t, json.NewDecoder(w.Body).Decode(&stats))
	require.Equal(t, 2, stats.CurrentStreak)
	require.Len(t, stats.LastTen, 2)
	require.NotNil(t, stats.HottestSport)
	require.Equal(t, "NBA", stats.HottestSport.Sport)
}

func TestGetBankrollHistory(t *testing.T) {
	mock := &mockStore{
		bets: []models.Bet{seedBet("bet-1", models.StatusWon)},
		deposits: []models.BookDeposit{
			{Sportsbook: models.BookDraftKings, Amount: decimal.RequireFromString("1000")},
		},
	}
	h := newTestHandler(mock, nil)

	req := httptest.NewRequest("GET", "/api/v1/stats/history", nil)
	w := httptest.NewRecorder()
	h.GetBankrollHistory(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		History []models.BankrollHistoryPoint `json:"history"`
		Count   int                           `json:"count"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Equal(t, 2, body.Count)
	require.Equal(t, "Start", body.History[0].Date)
	require.True(t, body.History[0].Balance.Equal(decimal.RequireFromString("1000")))
	require.True(t, body.History[1].Balance.Equal(decimal.RequireFromString("1050")),
		"balance after win = %s", body.History[1].Balance)
}

func TestGetOverview(t *testing.T) {
	mock := &mockStore{bets: []models.Bet{seedBet("bet-1", models.StatusWon)}}
	h := newTestHandler(mock, nil)

	req := httptest.NewRequest("GET", "/api/v1/stats/overview", nil)
	w := httptest.NewRecorder()
	h.GetOverview(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	for _, key := range []string{"bankroll", "books", "advanced", "history"} {
		require.Contains(t, body, key)
	}
}

func TestGetBooks(t *testing.T) {
	mock := &mockStore{
		deposits: []models.BookDeposit{
			{Sportsbook: models.BookFanDuel, Amount: decimal.RequireFromString("200")},
		},
	}
	h := newTestHandler(mock, nil)

	req := httptest.NewRequest("GET", "/api/v1/books", nil)
	w := httptest.NewRecorder()
	h.GetBooks(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Books []models.BookBalance `json:"books"`
		Count int                  `json:"count"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Equal(t, len(models.KnownBooks), body.Count)

	for _, book := range body.Books {
		if book.Sportsbook == models.BookFanDuel {
			require.True(t, book.CurrentBalance.Equal(decimal.RequireFromString("200")))
			return
		}
	}
	t.Fatal("fanduel balance missing from books response")
}

func TestGetDeposits(t *testing.T) {
	mock := &mockStore{
		deposits: []models.BookDeposit{
			{Sportsbook: models.BookDraftKings, Amount: decimal.RequireFromString("500")},
			{Sportsbook: models.BookFanDuel, Amount: decimal.RequireFromString("250")},
		},
	}
	h := newTestHandler(mock, nil)

	req := httptest.NewRequest("GET", "/api/v1/books/deposits", nil)
	w := httptest.NewRecorder()
	h.GetDeposits(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Deposits []models.BookDeposit `json:"deposits"`
		Count    int                  `json:"count"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Equal(t, 2, body.Count)
}

func TestSetDeposit(t *testing.T) {
	mock := &mockStore{}
	r := newRouter(newTestHandler(mock, nil))

	// Alias book keys resolve to the canonical entry
	req := httptest.NewRequest("PUT", "/books/dk/deposit", strings.NewReader(`{"amount":500}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var deposit models.BookDeposit
	require.NoError(t, json.NewDecoder(w.Body).Decode(&deposit))
	require.Equal(t, models.BookDraftKings, deposit.Sportsbook)
	require.True(t, deposit.Amount.Equal(decimal.RequireFromString("500")))

	// Setting again replaces the amount
	req = httptest.NewRequest("PUT", "/books/draftkings/deposit", strings.NewReader(`{"amount":750}`))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, mock.deposits, 1)
	require.True(t, mock.deposits[0].Amount.Equal(decimal.RequireFromString("750")))
}

func TestSetDepositNegativeAllowed(t *testing.T) {
	mock := &mockStore{}
	r := newRouter(newTestHandler(mock, nil))

	req := httptest.NewRequest("PUT", "/books/fanduel/deposit", strings.NewReader(`{"amount":-120.50}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, mock.deposits[0].Amount.Equal(decimal.RequireFromString("-120.50")))
}

func TestSetDepositUnknownBook(t *testing.T) {
	mock := &mockStore{}
	r := newRouter(newTestHandler(mock, nil))

	req := httptest.NewRequest("PUT", "/books/bovada/deposit", strings.NewReader(`{"amount":500}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var errResp models.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&errResp))
	require.Equal(t, "unknown sportsbook", errResp.Message)
	require.Empty(t, mock.deposits)
}
