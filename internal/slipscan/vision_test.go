package slipscan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func visionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "test-model", req["model"])

		reply := map[string]any{
			"choices": []any{
				map[string]any{"message": map[string]any{"content": content}},
			},
		}
		json.NewEncoder(w).Encode(reply)
	}))
}

func TestExtractParsesReply(t *testing.T) {
	content := `{"bets": [{"date": "2025-03-01", "matchup": "Lakers vs Celtics", "pick": "Lakers ML", "sport": "NBA", "sportsbook": "DraftKings", "odds": -110, "wager": 55.50}]}`
	server := visionServer(t, content)
	defer server.Close()

	client := NewVisionClient(server.URL, "test-key", "test-model")
	drafts, err := client.Extract(context.Background(), "aW1hZ2U=", "image/png")
	require.NoError(t, err)
	require.Len(t, drafts, 1)

	draft := drafts[0]
	require.Equal(t, "2025-03-01", draft.Date)
	require.Equal(t, "Lakers vs Celtics", draft.Matchup)
	require.Equal(t, -110, draft.Odds)
	require.Equal(t, "55.50", draft.Wager.StringFixed(2))
}

func TestExtractToleratesFencedReply(t *testing.T) {
	content := "```json\n[{\"date\": \"2025-03-01\", \"matchup\": \"UFC 311\", \"pick\": \"Makhachev ML\", \"odds\": \"-200\", \"wager\": \"$25\"}]\n```"
	server := visionServer(t, content)
	defer server.Close()

	client := NewVisionClient(server.URL, "test-key", "test-model")
	drafts, err := client.Extract(context.Background(), "aW1hZ2U=", "")
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	require.Equal(t, -200, drafts[0].Odds)
	require.Equal(t, "25.00", drafts[0].Wager.StringFixed(2))
}

func TestExtractUnreadableFieldsDefaultToZero(t *testing.T) {
	content := `{"bets": [{"matchup": "Suns vs Nuggets", "odds": "pick em", "wager": null}]}`
	server := visionServer(t, content)
	defer server.Close()

	client := NewVisionClient(server.URL, "test-key", "test-model")
	drafts, err := client.Extract(context.Background(), "aW1hZ2U=", "image/jpeg")
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	require.Zero(t, drafts[0].Odds)
	require.True(t, drafts[0].Wager.IsZero())
}

func TestExtractRejectsNonJSONReply(t *testing.T) {
	server := visionServer(t, "I could not read the slip, sorry.")
	defer server.Close()

	client := NewVisionClient(server.URL, "test-key", "test-model")
	_, err := client.Extract(context.Background(), "aW1hZ2U=", "image/png")
	require.Error(t, err)
}

func TestExtractAPIErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error": "rate limited"}`)
	}))
	defer server.Close()

	client := NewVisionClient(server.URL, "test-key", "test-model")
	_, err := client.Extract(context.Background(), "aW1hZ2U=", "image/png")
	require.Error(t, err)
	require.Contains(t, err.Error(), "429")
}
