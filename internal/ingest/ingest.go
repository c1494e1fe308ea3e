// Package ingest turns loosely shaped input (create requests, slip
// extraction drafts, import payloads) into fully populated bet
// records. It owns the classifier fallback and sportsbook
// normalization so every entry path applies the same rules.
package ingest

import (
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/parlaydev/betledger/pkg/models"
	"github.com/parlaydev/betledger/pkg/oddsmath"
	"github.com/parlaydev/betledger/pkg/sportclass"
)

// Edit-distance ceiling for fuzzy sportsbook matching
const maxBookDistance = 2

// NewBet builds a pending bet from a create request. The sport falls
// back to the classifier when absent or generic, the sportsbook is
// normalized, and the potential profit is computed here once.
func NewBet(req models.CreateBetRequest, now time.Time) models.Bet {
	return models.Bet{
		ID:              uuid.NewString(),
		Date:            req.Date,
		Matchup:         strings.TrimSpace(req.Matchup),
		Pick:            strings.TrimSpace(req.Pick),
		Sport:           resolveSport(req.Sport, req.Matchup, req.Pick, req.Date),
		Sportsbook:      NormalizeBook(req.Sportsbook),
		Odds:            req.Odds,
		Wager:           req.Wager,
		PotentialProfit: oddsmath.PotentialProfit(req.Wager, req.Odds),
		Status:          models.StatusPending,
		CreatedAt:       now,
		Tags:            req.Tags,
	}
}

// ApplyEdit replaces the editable fields of a bet and recomputes its
// potential profit. Empty sport and sportsbook keep their current
// values rather than resetting.
func ApplyEdit(bet *models.Bet, req models.UpdateBetRequest) {
	bet.Date = req.Date
	bet.Matchup = strings.TrimSpace(req.Matchup)
	bet.Pick = strings.TrimSpace(req.Pick)
	if strings.TrimSpace(req.Sport) != "" {
		bet.Sport = strings.TrimSpace(req.Sport)
	}
	if strings.TrimSpace(req.Sportsbook) != "" {
		bet.Sportsbook = NormalizeBook(req.Sportsbook)
	}
	bet.Odds = req.Odds
	bet.Wager = req.Wager
	bet.PotentialProfit = oddsmath.PotentialProfit(req.Wager, req.Odds)
	bet.Tags = req.Tags
}

// NormalizeDraft fills the gaps in a slip extraction draft: missing or
// unparseable dates default to today, negative wagers reset, and the
// sport and book pass through the same resolution as manual entry.
func NormalizeDraft(draft models.BetDraft, now time.Time) models.BetDraft {
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(draft.Date)); err != nil {
		draft.Date = now.Format("2006-01-02")
	} else {
		draft.Date = strings.TrimSpace(draft.Date)
	}
	draft.Matchup = strings.TrimSpace(draft.Matchup)
	draft.Pick = strings.TrimSpace(draft.Pick)
	draft.Sport = resolveSport(draft.Sport, draft.Matchup, draft.Pick, draft.Date)
	draft.Sportsbook = string(NormalizeBook(draft.Sportsbook))
	if draft.Wager.IsNegative() {
		draft.Wager = decimal.Zero
	}
	return draft
}

// NormalizeBook resolves free-text book identifiers to the known set.
// Exact and alias matches come first, then a small-edit-distance pass
// catches typos like "draftking"; everything else lands on Other.
func NormalizeBook(raw string) models.Sportsbook {
	if book, ok := models.CanonicalBook(raw); ok {
		return book
	}
	folded := strings.ToLower(strings.TrimSpace(raw))
	if folded == "" {
		return models.BookOther
	}

	best := models.BookOther
	bestDistance := maxBookDistance + 1
	for _, info := range models.KnownBooks {
		for _, candidate := range []string{string(info.Key), strings.ToLower(info.Label)} {
			if d := levenshtein.ComputeDistance(folded, candidate); d < bestDistance {
				best = info.Key
				bestDistance = d
			}
		}
	}
	return best
}

func resolveSport(sport, matchup, pick, date string) string {
	trimmed := strings.TrimSpace(sport)
	if trimmed != "" && trimmed != sportclass.SportOther {
		return trimmed
	}
	return sportclass.InferDated(matchup, pick, date)
}
