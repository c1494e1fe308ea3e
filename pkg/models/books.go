package models

import "strings"

// Sportsbook identifies a wagering venue
type Sportsbook string

const (
	BookDraftKings Sportsbook = "draftkings"
	BookFanDuel    Sportsbook = "fanduel"
	BookBetMGM     Sportsbook = "betmgm"
	BookCaesars    Sportsbook = "caesars"
	BookESPNBet    Sportsbook = "espnbet"
	BookFanatics   Sportsbook = "fanatics"
	BookHardRock   Sportsbook = "hardrock"
	BookBet365     Sportsbook = "bet365"
	BookPointsBet  Sportsbook = "pointsbet"
	BookOther      Sportsbook = "other"
)

// BookInfo carries display metadata for a sportsbook
type BookInfo struct {
	Key   Sportsbook `json:"key"`
	Label string     `json:"label"`
	Color string     `json:"color"`
}

// KnownBooks lists every recognized sportsbook in display order.
// BookOther is the fallback bucket and is always last.
var KnownBooks = []BookInfo{
	{BookDraftKings, "DraftKings", "#53d337"},
	{BookFanDuel, "FanDuel", "#1381e0"},
	{BookBetMGM, "BetMGM", "#b8a45c"},
	{BookCaesars, "Caesars", "#043b2f"},
	{BookESPNBet, "ESPN BET", "#0d1b2a"},
	{BookFanatics, "Fanatics", "#1f6feb"},
	{BookHardRock, "Hard Rock", "#6b2d87"},
	{BookBet365, "Bet365", "#027b5b"},
	{BookPointsBet, "PointsBet", "#ed1b42"},
	{BookOther, "Other", "#6b7280"},
}

var bookAliases = map[string]Sportsbook{
	"dk":            BookDraftKings,
	"draft kings":   BookDraftKings,
	"fd":            BookFanDuel,
	"fan duel":      BookFanDuel,
	"mgm":           BookBetMGM,
	"bet mgm":       BookBetMGM,
	"czr":           BookCaesars,
	"caesars sb":    BookCaesars,
	"espn":          BookESPNBet,
	"espn bet":      BookESPNBet,
	"hard rock bet": BookHardRock,
	"hrb":           BookHardRock,
	"pb":            BookPointsBet,
	"points bet":    BookPointsBet,
}

// Info returns display metadata for b, falling back to the Other entry
// for unrecognized keys.
func (b Sportsbook) Info() BookInfo {
	for _, info := range KnownBooks {
		if info.Key == b {
			return info
		}
	}
	return KnownBooks[len(KnownBooks)-1]
}

// Known reports whether b is one of the recognized sportsbook keys
func (b Sportsbook) Known() bool {
	for _, info := range KnownBooks {
		if info.Key == b {
			return true
		}
	}
	return false
}

// CanonicalBook resolves a raw identifier to a known sportsbook by key,
// label, or alias. The second return is false when nothing matched.
func CanonicalBook(raw string) (Sportsbook, bool) {
	folded := strings.ToLower(strings.TrimSpace(raw))
	if folded == "" {
		return BookOther, false
	}
	for _, info := range KnownBooks {
		if folded == string(info.Key) || folded == strings.ToLower(info.Label) {
			return info.Key, true
		}
	}
	if book, ok := bookAliases[folded]; ok {
		return book, true
	}
	return BookOther, false
}
