package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/parlaydev/betledger/pkg/models"
)

type mockExtractor struct {
	drafts []models.BetDraft
	err    error
}

func (m *mockExtractor) Extract(ctx context.Context, imageBase64, mimeType string) ([]models.BetDraft, error) {
	return m.drafts, m.err
}

func TestExportSnapshot(t *testing.T) {
	mock := &mockStore{
		bets: []models.Bet{seedBet("bet-1", models.StatusWon)},
		deposits: []models.BookDeposit{
			{Sportsbook: models.BookDraftKings, Amount: decimal.RequireFromString("1000")},
		},
	}
	h := newTestHandler(mock, nil)

	req := httptest.NewRequest("GET", "/api/v1/snapshot/export", nil)
	w := httptest.NewRecorder()
	h.ExportSnapshot(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	disposition := w.Header().Get("Content-Disposition")
	require.Contains(t, disposition, "attachment")
	require.Contains(t, disposition, "betledger-")

	var snapshot models.Snapshot
	require.NoError(t, json.NewDecoder(w.Body).Decode(&snapshot))
	require.Len(t, snapshot.Bets, 1)
	require.Len(t, snapshot.Deposits, 1)
	require.Equal(t, "bet-1", snapshot.Bets[0].ID)
}

func TestImportSnapshot(t *testing.T) {
	mock := &mockStore{bets: []models.Bet{seedBet("stale", models.StatusWon)}}
	h := newTestHandler(mock, nil)

	body := `[
		{"date":"2025-04-01","matchup":"Yankees vs Mets","pick":"Over 8.5","odds":-105,"wager":21,"status":"WON"},
		{"date":"2025-04-02","matchup":"Chiefs vs Bills","pick":"Chiefs ML","odds":120,"wager":50}
	]`
	req := httptest.NewRequest("POST", "/api/v1/snapshot/import", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ImportSnapshot(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.EqualValues(t, 2, resp["imported_bets"])
	require.EqualValues(t, 0, resp["imported_deposits"])

	require.Equal(t, 1, mock.replaced)
	require.Len(t, mock.bets, 2)
	for _, bet := range mock.bets {
		require.NotEqual(t, "stale", bet.ID)
	}
}

func TestImportSnapshotWithDeposits(t *testing.T) {
	mock := &mockStore{}
	h := newTestHandler(mock, nil)

	body := `{
		"bets": [{"date":"2025-04-01","matchup":"Yankees vs Mets","pick":"Over 8.5","odds":-105,"wager":21}],
		"deposits": [{"sportsbook":"fanduel","amount":300}]
	}`
	req := httptest.NewRequest("POST", "/api/v1/snapshot/import", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ImportSnapshot(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, mock.deposits, 1)
	require.Equal(t, models.BookFanDuel, mock.deposits[0].Sportsbook)
}

func TestImportSnapshotRejectsBadPayload(t *testing.T) {
	mock := &mockStore{bets: []models.Bet{seedBet("keep-me", models.StatusWon)}}
	h := newTestHandler(mock, nil)

	tests := []struct {
		name string
		body string
	}{
		{"not json", `this is not json`},
		{"missing date", `[{"matchup":"Yankees vs Mets","pick":"Over","odds":-105,"wager":21}]`},
		{"zero wager", `[{"date":"2025-04-01","matchup":"Yankees vs Mets","pick":"Over","odds":-105,"wager":0}]`},
		{"unknown status", `[{"date":"2025-04-01","matchup":"Yankees vs Mets","pick":"Over","odds":-105,"wager":21,"status":"MAYBE"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/v1/snapshot/import", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.ImportSnapshot(w, req)
			require.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	// A rejected import leaves the existing data alone
	require.Equal(t, 0, mock.replaced)
	require.Len(t, mock.bets, 1)
	require.Equal(t, "keep-me", mock.bets[0].ID)
}

func TestBackupWithoutRedis(t *testing.T) {
	h := newTestHandler(&mockStore{}, nil)

	req := httptest.NewRequest("POST", "/api/v1/snapshot/backup", nil)
	w := httptest.NewRecorder()
	h.BackupSnapshot(w, req)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRestoreWithoutRedis(t *testing.T) {
	h := newTestHandler(&mockStore{}, nil)

	req := httptest.NewRequest("POST", "/api/v1/snapshot/restore", nil)
	w := httptest.NewRecorder()
	h.RestoreSnapshot(w, req)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestScanSlipUnconfigured(t *testing.T) {
	h := newTestHandler(&mockStore{}, nil)

	req := httptest.NewRequest("POST", "/api/v1/slips/scan", strings.NewReader(`{"image_base64":"aGVsbG8="}`))
	w := httptest.NewRecorder()
	h.ScanSlip(w, req)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestScanSlip(t *testing.T) {
	extractor := &mockExtractor{
		drafts: []models.BetDraft{{
			Matchup:    "Yankees vs Mets",
			Pick:       "Over 8.5",
			Sportsbook: "dk",
			Odds:       -110,
			Wager:      decimal.RequireFromString("25"),
		}},
	}
	h := newTestHandler(&mockStore{}, extractor)

	req := httptest.NewRequest("POST", "/api/v1/slips/scan", strings.NewReader(`{"image_base64":"aGVsbG8="}`))
	w := httptest.NewRecorder()
	h.ScanSlip(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Drafts []models.BetDraft `json:"drafts"`
		Count  int               `json:"count"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Equal(t, 1, body.Count)

	draft := body.Drafts[0]
	require.Equal(t, time.Now().UTC().Format("2006-01-02"), draft.Date)
	require.Equal(t, "MLB", draft.Sport)
	require.Equal(t, "draftkings", draft.Sportsbook)
	require.True(t, draft.Wager.Equal(decimal.RequireFromString("25")))
}

func TestScanSlipMissingImage(t *testing.T) {
	h := newTestHandler(&mockStore{}, &mockExtractor{})

	req := httptest.NewRequest("POST", "/api/v1/slips/scan", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	h.ScanSlip(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScanSlipExtractorFailure(t *testing.T) {
	h := newTestHandler(&mockStore{}, &mockExtractor{err: errors.New("model unavailable")})

	req := httptest.NewRequest("POST", "/api/v1/slips/scan", strings.NewReader(`{"image_base64":"aGVsbG8="}`))
	w := httptest.NewRecorder()
	h.ScanSlip(w, req)

	require.Equal(t, http.StatusBadGateway, w.Code)
}
