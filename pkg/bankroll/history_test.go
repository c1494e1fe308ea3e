package bankroll

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/parlaydev/betledger/pkg/models"
)

func datedBet(date string, status models.BetStatus, wager string, odds int) models.Bet {
	bet := testBet(models.BookDraftKings, status, wager, odds)
	bet.Date = date
	return bet
}

func TestHistorySameDateMerges(t *testing.T) {
	// Two wins worth +50 and +30 on the same date become one point.
	bets := []models.Bet{
		datedBet("2025-01-15", models.StatusWon, "50", 100),
		datedBet("2025-01-15", models.StatusWon, "30", 100),
	}

	points := History(decimal.NewFromInt(1000), bets)

	if len(points) != 2 {
		t.Fatalf("got %d points, want 2 (Start plus one merged date)", len(points))
	}
	if points[0].Date != "Start" || points[0].Balance.StringFixed(2) != "1000.00" {
		t.Errorf("leading point = %+v, want Start at 1000.00", points[0])
	}
	if points[1].Date != "2025-01-15" || points[1].Balance.StringFixed(2) != "1080.00" {
		t.Errorf("merged point = %+v, want 2025-01-15 at 1080.00", points[1])
	}
}

func TestHistoryStartPointAlways(t *testing.T) {
	points := History(decimal.NewFromInt(250), nil)

	if len(points) != 1 {
		t.Fatalf("got %d points, want just the Start point", len(points))
	}
	if points[0].Date != "Start" || points[0].FormattedDate != "Start" {
		t.Errorf("synthetic point = %+v", points[0])
	}
	if points[0].Balance.StringFixed(2) != "250.00" {
		t.Errorf("start balance = %s, want 250.00", points[0].Balance.StringFixed(2))
	}
}

func TestHistoryChronologicalOrder(t *testing.T) {
	bets := []models.Bet{
		datedBet("2025-03-01", models.StatusLost, "100", -110),
		datedBet("2025-01-10", models.StatusWon, "100", 100),
		datedBet("2025-02-14", models.StatusWon, "50", 100),
	}

	points := History(decimal.NewFromInt(500), bets)

	wantDates := []string{"Start", "2025-01-10", "2025-02-14", "2025-03-01"}
	if len(points) != len(wantDates) {
		t.Fatalf("got %d points, want %d", len(points), len(wantDates))
	}
	for i, want := range wantDates {
		if points[i].Date != want {
			t.Errorf("points[%d].Date = %s, want %s", i, points[i].Date, want)
		}
	}

	// 500 +100 +50 -100
	if points[3].Balance.StringFixed(2) != "550.00" {
		t.Errorf("final balance = %s, want 550.00", points[3].Balance.StringFixed(2))
	}
}

func TestHistorySkipsPendingKeepsPushDates(t *testing.T) {
	bets := []models.Bet{
		datedBet("2025-01-10", models.StatusPending, "100", -110),
		datedBet("2025-01-12", models.StatusPush, "40", -110),
	}

	points := History(decimal.NewFromInt(300), bets)

	// The pending bet contributes no point; the push marks its date but
	// moves nothing.
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if points[1].Date != "2025-01-12" || points[1].Balance.StringFixed(2) != "300.00" {
		t.Errorf("push point = %+v, want flat 300.00 on 2025-01-12", points[1])
	}
}

func TestHistoryFormattedDates(t *testing.T) {
	bets := []models.Bet{
		datedBet("2025-01-02", models.StatusWon, "10", 100),
	}

	points := History(decimal.Zero, bets)

	if points[1].FormattedDate != "Jan 2" {
		t.Errorf("FormattedDate = %q, want %q", points[1].FormattedDate, "Jan 2")
	}
}
