package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Money fields travel as JSON numbers, matching the snapshot format
	// exported and imported by clients.
	decimal.MarshalJSONWithoutQuotes = true
}

// BetStatus is the settlement state of a bet
type BetStatus string

const (
	StatusPending BetStatus = "PENDING"
	StatusWon     BetStatus = "WON"
	StatusLost    BetStatus = "LOST"
	StatusPush    BetStatus = "PUSH"
)

// ParseStatus validates a raw status string
func ParseStatus(raw string) (BetStatus, error) {
	switch BetStatus(raw) {
	case StatusPending, StatusWon, StatusLost, StatusPush:
		return BetStatus(raw), nil
	}
	return "", fmt.Errorf("unknown bet status %q", raw)
}

// Settled reports whether the status is WON, LOST, or PUSH
func (s BetStatus) Settled() bool {
	return s == StatusWon || s == StatusLost || s == StatusPush
}

// Decided reports whether the status is WON or LOST
func (s BetStatus) Decided() bool {
	return s == StatusWon || s == StatusLost
}

// Bet represents a single wager entry
type Bet struct {
	ID              string          `json:"id"`
	Date            string          `json:"date"`
	Matchup         string          `json:"matchup"`
	Pick            string          `json:"pick"`
	Sport           string          `json:"sport"`
	Sportsbook      Sportsbook      `json:"sportsbook"`
	Odds            int             `json:"odds"`
	Wager           decimal.Decimal `json:"wager"`
	PotentialProfit decimal.Decimal `json:"potential_profit"`
	Status          BetStatus       `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	Tags            []string        `json:"tags,omitempty"`
}

// NetResult is the realized profit or loss of a settled bet: the
// precomputed profit when WON, the lost stake when LOST, zero for PUSH
// and for bets still pending.
func (b Bet) NetResult() decimal.Decimal {
	switch b.Status {
	case StatusWon:
		return b.PotentialProfit
	case StatusLost:
		return b.Wager.Neg()
	}
	return decimal.Zero
}

// BookDeposit records the cumulative net amount deposited at one book
type BookDeposit struct {
	Sportsbook Sportsbook      `json:"sportsbook"`
	Amount     decimal.Decimal `json:"amount"`
}

// Snapshot is the full persisted state of a ledger
type Snapshot struct {
	Bets     []Bet         `json:"bets"`
	Deposits []BookDeposit `json:"deposits"`
}

// BetFilters defines filters for bet queries
type BetFilters struct {
	Status     string
	Sport      string
	Sportsbook string
	Limit      int
	Offset     int
}

// BookBalance is the derived balance view for one sportsbook
type BookBalance struct {
	Sportsbook     Sportsbook      `json:"sportsbook"`
	Label          string          `json:"label"`
	Color          string          `json:"color"`
	Deposited      decimal.Decimal `json:"deposited"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
}

// BankrollState is the aggregate bankroll snapshot
type BankrollState struct {
	StartingBalance decimal.Decimal `json:"starting_balance"`
	CurrentBalance  decimal.Decimal `json:"current_balance"`
	TotalWagered    decimal.Decimal `json:"total_wagered"`
	TotalWon        decimal.Decimal `json:"total_won"`
	TotalLost       decimal.Decimal `json:"total_lost"`
	TotalBets       int             `json:"total_bets"`
	Wins            int             `json:"wins"`
	Losses          int             `json:"losses"`
	Pushes          int             `json:"pushes"`
	ROIPct          float64         `json:"roi_pct"`
	FlatROIPct      float64         `json:"flat_roi_pct"`
}

// SportPerformance summarizes profit for one sport grouping
type SportPerformance struct {
	Sport  string          `json:"sport"`
	Profit decimal.Decimal `json:"profit"`
	Record string          `json:"record"`
}

// BookPerformance is one row of the per-book performance table
type BookPerformance struct {
	Sportsbook Sportsbook      `json:"sportsbook"`
	Profit     decimal.Decimal `json:"profit"`
	Wins       int             `json:"wins"`
	Losses     int             `json:"losses"`
	Pushes     int             `json:"pushes"`
	WinRatePct float64         `json:"win_rate_pct"`
}

// PickPerformance is one row of the per-pick leaderboard
type PickPerformance struct {
	Pick   string          `json:"pick"`
	Profit decimal.Decimal `json:"profit"`
	Wins   int             `json:"wins"`
	Losses int             `json:"losses"`
	Pushes int             `json:"pushes"`
}

// AdvancedStats bundles streak, recency, and grouping analytics
type AdvancedStats struct {
	CurrentStreak int               `json:"current_streak"`
	LastTen       []BetStatus       `json:"last_ten"`
	HottestSport  *SportPerformance `json:"hottest_sport"`
	ColdestSport  *SportPerformance `json:"coldest_sport"`
	Books         []BookPerformance `json:"books"`
	TopPicks      []PickPerformance `json:"top_picks"`
}

// BankrollHistoryPoint is one step of the cumulative balance series
type BankrollHistoryPoint struct {
	Date          string          `json:"date"`
	Balance       decimal.Decimal `json:"balance"`
	FormattedDate string          `json:"formatted_date"`
}

// StatsUpdate is the frame broadcast to websocket clients after a mutation
type StatsUpdate struct {
	Type      string        `json:"type"`
	Bankroll  BankrollState `json:"bankroll"`
	Books     []BookBalance `json:"books"`
	Timestamp time.Time     `json:"timestamp"`
}

// ErrorResponse is the standard error payload
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
