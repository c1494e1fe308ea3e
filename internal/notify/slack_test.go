package notify

import (
	"context"
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

func settledBet(status models.BetStatus) models.Bet {
	return models.Bet{
		ID:              "bet-1",
		Date:            "2025-03-01",
		Matchup:         "Lakers vs Celtics",
		Pick:            "Lakers ML",
		Sport:           "NBA",
		Sportsbook:      models.BookDraftKings,
		Odds:            -110,
		Wager:           decimal.RequireFromString("100"),
		PotentialProfit: decimal.RequireFromString("90.91"),
		Status:          status,
		CreatedAt:       time.Now(),
	}
}

func TestBetSettledPostsWebhook(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := NewSlackNotifier(server.URL)
	err := notifier.BetSettled(context.Background(), settledBet(models.StatusWon), decimal.RequireFromString("1090.91"), 3)
	require.NoError(t, err)

	text, ok := captured["text"].(string)
	require.True(t, ok)
	require.Contains(t, text, "BET WON")
	require.Contains(t, text, "+$90.91")
	require.Contains(t, text, "DraftKings")
	require.Contains(t, text, "$1090.91")
	require.Contains(t, text, "Streak: W3")
}

func TestBetSettledLostMessage(t *testing.T) {
	var text string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		json.NewDecoder(r.Body).Decode(&payload)
		text, _ = payload["text"].(string)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := NewSlackNotifier(server.URL)
	require.NoError(t, notifier.BetSettled(context.Background(), settledBet(models.StatusLost), decimal.RequireFromString("900"), -2))
	require.Contains(t, text, "BET LOST")
	require.Contains(t, text, "-$100.00")
	require.Contains(t, text, "Streak: L2")
}

func TestWebhookErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	notifier := NewSlackNotifier(server.URL)
	err := notifier.BetSettled(context.Background(), settledBet(models.StatusWon), decimal.Zero, 1)
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "502"))
}

func TestDisabledNotifierIsNoOp(t *testing.T) {
	notifier := NewSlackNotifier("")
	require.False(t, notifier.Enabled())
	require.NoError(t, notifier.BetSettled(context.Background(), settledBet(models.StatusWon), decimal.Zero, 0))
}
