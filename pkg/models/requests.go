package models

import "github.com/shopspring/decimal"

// CreateBetRequest is the payload for logging a new bet
type CreateBetRequest struct {
	Date       string          `json:"date" validate:"required,datetime=2006-01-02"`
	Matchup    string          `json:"matchup" validate:"required"`
	Pick       string          `json:"pick" validate:"required"`
	Sport      string          `json:"sport"`
	Sportsbook string          `json:"sportsbook"`
	Odds       int             `json:"odds"`
	Wager      decimal.Decimal `json:"wager"`
	Tags       []string        `json:"tags"`
}

// UpdateBetRequest replaces the editable fields of an existing bet.
// Status changes go through UpdateStatusRequest instead.
type UpdateBetRequest struct {
	Date       string          `json:"date" validate:"required,datetime=2006-01-02"`
	Matchup    string          `json:"matchup" validate:"required"`
	Pick       string          `json:"pick" validate:"required"`
	Sport      string          `json:"sport"`
	Sportsbook string          `json:"sportsbook"`
	Odds       int             `json:"odds"`
	Wager      decimal.Decimal `json:"wager"`
	Tags       []string        `json:"tags"`
}

// UpdateStatusRequest moves a bet through the settlement state machine
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING WON LOST PUSH"`
}

// DepositRequest sets the cumulative net deposited amount for a book
type DepositRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// ScanRequest carries a bet slip image for draft extraction
type ScanRequest struct {
	ImageBase64 string `json:"image_base64" validate:"required"`
	MimeType    string `json:"mime_type"`
}

// BetDraft is the best-effort partial bet produced by slip extraction.
// Any field may be absent or wrong; normalization fills the gaps.
type BetDraft struct {
	Date       string          `json:"date"`
	Matchup    string          `json:"matchup"`
	Pick       string          `json:"pick"`
	Sport      string          `json:"sport"`
	Sportsbook string          `json:"sportsbook"`
	Odds       int             `json:"odds"`
	Wager      decimal.Decimal `json:"wager"`
}
