package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/parlaydev/betledger/pkg/models"
	"github.com/parlaydev/betledger/pkg/oddsmath"
)

var testClock = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// seqBet builds a settled bet whose position in the recency order is
// fixed by age: age 0 is the most recent.
func seqBet(age int, status models.BetStatus, wager string, odds int) models.Bet {
	amount := decimal.RequireFromString(wager)
	return models.Bet{
		ID:              "test",
		Date:            "2025-05-20",
		Matchup:         "Lakers vs Celtics",
		Pick:            "Lakers -5.5",
		Sport:           "NBA",
		Sportsbook:      models.BookDraftKings,
		Odds:            odds,
		Wager:           amount,
		PotentialProfit: oddsmath.PotentialProfit(amount, odds),
		Status:          status,
		CreatedAt:       testClock.Add(-time.Duration(age) * time.Hour),
	}
}

func statuses(ages []models.BetStatus) []models.Bet {
	bets := make([]models.Bet, 0, len(ages))
	for age, status := range ages {
		bets = append(bets, seqBet(age, status, "100", -110))
	}
	return bets
}

func TestCurrentStreak(t *testing.T) {
	tests := []struct {
		name     string
		sequence []models.BetStatus // most recent first
		expected int
	}{
		{
			name:     "win streak stops at first loss",
			sequence: []models.BetStatus{models.StatusWon, models.StatusWon, models.StatusLost, models.StatusWon},
			expected: 2,
		},
		{
			name:     "loss streak is negative",
			sequence: []models.BetStatus{models.StatusLost, models.StatusLost, models.StatusWon},
			expected: -2,
		},
		{
			name:     "leading push is transparent",
			sequence: []models.BetStatus{models.StatusPush, models.StatusWon, models.StatusWon, models.StatusLost},
			expected: 2,
		},
		{
			name:     "mid-streak push is skipped without breaking the run",
			sequence: []models.BetStatus{models.StatusWon, models.StatusPush, models.StatusWon, models.StatusLost},
			expected: 2,
		},
		{
			name:     "all pushes",
			sequence: []models.BetStatus{models.StatusPush, models.StatusPush},
			expected: 0,
		},
		{
			name:     "no settled bets",
			sequence: nil,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdvancedStats(statuses(tt.sequence)).CurrentStreak
			if got != tt.expected {
				t.Errorf("CurrentStreak = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestCurrentStreakIgnoresPending(t *testing.T) {
	bets := statuses([]models.BetStatus{models.StatusWon, models.StatusWon})
	bets = append(bets, seqBet(-1, models.StatusPending, "100", -110)) // newest of all

	got := AdvancedStats(bets).CurrentStreak
	if got != 2 {
		t.Errorf("CurrentStreak = %d, want 2 with pending bet ignored", got)
	}
}

func TestLastTen(t *testing.T) {
	sequence := make([]models.BetStatus, 12)
	for i := range sequence {
		sequence[i] = models.StatusLost
	}
	sequence[0] = models.StatusWon // most recent

	got := AdvancedStats(statuses(sequence)).LastTen

	if len(got) != 10 {
		t.Fatalf("LastTen has %d entries, want 10", len(got))
	}
	if got[0] != models.StatusWon {
		t.Errorf("LastTen[0] = %s, want most recent result first", got[0])
	}

	short := AdvancedStats(statuses([]models.BetStatus{models.StatusWon})).LastTen
	if len(short) != 1 {
		t.Errorf("short history LastTen has %d entries, want 1", len(short))
	}
}

func TestHottestColdestSport(t *testing.T) {
	profitable := seqBet(0, models.StatusWon, "100", 100)
	profitable.Sport = "NBA"
	losing := seqBet(1, models.StatusLost, "80", -110)
	losing.Sport = "NFL"
	flat := seqBet(2, models.StatusPush, "50", -110)
	flat.Sport = "MLB"

	stats := AdvancedStats([]models.Bet{profitable, losing, flat})

	if stats.HottestSport == nil || stats.HottestSport.Sport != "NBA" {
		t.Fatalf("HottestSport = %+v, want NBA", stats.HottestSport)
	}
	if stats.HottestSport.Record != "1-0-0" {
		t.Errorf("hottest record = %s, want 1-0-0", stats.HottestSport.Record)
	}
	if stats.ColdestSport == nil || stats.ColdestSport.Sport != "NFL" {
		t.Fatalf("ColdestSport = %+v, want NFL", stats.ColdestSport)
	}
}

func TestHottestRequiresStrictProfit(t *testing.T) {
	loser := seqBet(0, models.StatusLost, "50", -110)
	loser.Sport = "NFL"
	push := seqBet(1, models.StatusPush, "50", -110)
	push.Sport = "MLB"

	stats := AdvancedStats([]models.Bet{loser, push})

	if stats.HottestSport != nil {
		t.Errorf("HottestSport = %+v, want nil with nothing in profit", stats.HottestSport)
	}
	if stats.ColdestSport == nil || stats.ColdestSport.Sport != "NFL" {
		t.Errorf("ColdestSport = %+v, want NFL", stats.ColdestSport)
	}
}

func TestColdestRequiresStrictLoss(t *testing.T) {
	winner := seqBet(0, models.StatusWon, "50", 100)
	winner.Sport = "NBA"
	push := seqBet(1, models.StatusPush, "50", -110)
	push.Sport = "MLB"

	stats := AdvancedStats([]models.Bet{winner, push})

	if stats.ColdestSport != nil {
		t.Errorf("ColdestSport = %+v, want nil with nothing losing", stats.ColdestSport)
	}
}

func TestBookTable(t *testing.T) {
	dkWin := seqBet(0, models.StatusWon, "100", 100)
	dkLoss := seqBet(1, models.StatusLost, "50", -110)
	fdPush := seqBet(2, models.StatusPush, "50", -110)
	fdPush.Sportsbook = models.BookFanDuel
	offshore := seqBet(3, models.StatusLost, "25", -110)
	offshore.Sportsbook = "offshore-special"

	stats := AdvancedStats([]models.Bet{dkWin, dkLoss, fdPush, offshore})

	if len(stats.Books) != 3 {
		t.Fatalf("got %d book rows, want 3", len(stats.Books))
	}
	// Sorted by profit: DK +50, FD 0, Other -25.
	if stats.Books[0].Sportsbook != models.BookDraftKings {
		t.Errorf("top book = %s, want draftkings", stats.Books[0].Sportsbook)
	}
	if rate := stats.Books[0].WinRatePct; rate != 50.0 {
		t.Errorf("draftkings win rate = %f, want 50", rate)
	}
	// Push-only book divides by zero decided bets and stays at 0.
	if rate := stats.Books[1].WinRatePct; rate != 0 {
		t.Errorf("fanduel win rate = %f, want 0", rate)
	}
	if stats.Books[2].Sportsbook != models.BookOther {
		t.Errorf("unknown book grouped as %s, want other", stats.Books[2].Sportsbook)
	}
}

func TestTopPicksLeaderboard(t *testing.T) {
	bets := make([]models.Bet, 0, 8)
	for i := 0; i < 6; i++ {
		bet := seqBet(i, models.StatusWon, "10", 100+10*i)
		bet.Pick = []string{"Lakers -5.5", "Celtics ML", "Chiefs -3.5", "Yankees ML", "Oilers +1.5", "Braves ML"}[i]
		bets = append(bets, bet)
	}
	pushOnly := seqBet(10, models.StatusPush, "40", -110)
	pushOnly.Pick = "Dodgers -1.5"
	bets = append(bets, pushOnly)

	stats := AdvancedStats(bets)

	if len(stats.TopPicks) != 5 {
		t.Fatalf("leaderboard has %d rows, want 5", len(stats.TopPicks))
	}
	for _, row := range stats.TopPicks {
		if row.Pick == "Dodgers" {
			t.Errorf("push-only pick made the leaderboard: %+v", row)
		}
	}
	// Highest profit first.
	if !stats.TopPicks[0].Profit.GreaterThanOrEqual(stats.TopPicks[4].Profit) {
		t.Errorf("leaderboard unsorted: %+v", stats.TopPicks)
	}
}

func TestPicksGroupAcrossLines(t *testing.T) {
	first := seqBet(0, models.StatusWon, "100", 100)
	first.Pick = "Lakers -5.5"
	second := seqBet(1, models.StatusLost, "40", -110)
	second.Pick = "Lakers -3"

	stats := AdvancedStats([]models.Bet{first, second})

	if len(stats.TopPicks) != 1 {
		t.Fatalf("got %d pick groups, want 1 (lines collapse)", len(stats.TopPicks))
	}
	row := stats.TopPicks[0]
	if row.Pick != "Lakers" {
		t.Errorf("pick key = %q, want %q", row.Pick, "Lakers")
	}
	if row.Wins != 1 || row.Losses != 1 {
		t.Errorf("record = %d-%d, want 1-1", row.Wins, row.Losses)
	}
	if row.Profit.StringFixed(2) != "60.00" {
		t.Errorf("profit = %s, want 60.00", row.Profit.StringFixed(2))
	}
}

func TestPickKey(t *testing.T) {
	tests := []struct {
		name     string
		pick     string
		expected string
	}{
		{"spread collapses", "Lakers -5.5", "Lakers"},
		{"three tokens keep two", "Over 145.5 alt", "Over"},
		{"short key falls back to raw pick", "KC -3", "KC -3"},
		{"moneyline keeps both words", "Celtics ML", "Celtics ML"},
		{"empty pick", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pickKey(tt.pick); got != tt.expected {
				t.Errorf("pickKey(%q) = %q, want %q", tt.pick, got, tt.expected)
			}
		})
	}
}

func TestAdvancedStatsEmpty(t *testing.T) {
	stats := AdvancedStats(nil)

	if stats.CurrentStreak != 0 || len(stats.LastTen) != 0 {
		t.Errorf("empty stats = %+v", stats)
	}
	if stats.HottestSport != nil || stats.ColdestSport != nil {
		t.Errorf("empty input produced sport summaries: %+v", stats)
	}
	if len(stats.Books) != 0 || len(stats.TopPicks) != 0 {
		t.Errorf("empty input produced groupings: %+v", stats)
	}
}
