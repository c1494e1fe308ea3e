// Package analytics computes streak, recency, and grouped performance
// views over a bet collection. Only settled bets participate; the
// canonical recency order is createdAt descending.
package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/parlaydev/betledger/pkg/models"
)

const leaderboardSize = 5

// AdvancedStats derives the full analytics bundle from a bet snapshot
func AdvancedStats(bets []models.Bet) models.AdvancedStats {
	settled := settledByRecency(bets)

	stats := models.AdvancedStats{
		CurrentStreak: currentStreak(settled),
		LastTen:       lastTen(settled),
	}

	sports := aggregateBy(settled, func(bet models.Bet) string { return bet.Sport })
	stats.HottestSport, stats.ColdestSport = hotCold(sports)

	books := aggregateBy(settled, func(bet models.Bet) string {
		book := bet.Sportsbook
		if !book.Known() {
			book = models.BookOther
		}
		return string(book)
	})
	stats.Books = bookTable(books)

	picks := aggregateBy(settled, func(bet models.Bet) string { return pickKey(bet.Pick) })
	stats.TopPicks = leaderboard(picks)

	return stats
}

func settledByRecency(bets []models.Bet) []models.Bet {
	settled := make([]models.Bet, 0, len(bets))
	for _, bet := range bets {
		if bet.Status.Settled() {
			settled = append(settled, bet)
		}
	}
	sort.SliceStable(settled, func(i, j int) bool {
		return settled[i].CreatedAt.After(settled[j].CreatedAt)
	})
	return settled
}

// currentStreak walks the recency order and counts consecutive results
// matching the leading outcome. Pushes are transparent: they neither
// extend nor break the run, wherever they sit.
func currentStreak(settled []models.Bet) int {
	streak := 0
	var leading models.BetStatus
	for _, bet := range settled {
		if bet.Status == models.StatusPush {
			continue
		}
		if leading == "" {
			leading = bet.Status
		}
		if bet.Status != leading {
			break
		}
		streak++
	}
	if leading == models.StatusLost {
		return -streak
	}
	return streak
}

func lastTen(settled []models.Bet) []models.BetStatus {
	n := len(settled)
	if n > 10 {
		n = 10
	}
	statuses := make([]models.BetStatus, 0, n)
	for _, bet := range settled[:n] {
		statuses = append(statuses, bet.Status)
	}
	return statuses
}

// aggregate is one group of the shared fold over sport, book, or pick
type aggregate struct {
	key    string
	profit decimal.Decimal
	wins   int
	losses int
	pushes int
}

// aggregateBy folds settled bets into per-key profit and record
// tallies, sorted by profit descending with the key breaking ties so
// output order is stable across runs.
func aggregateBy(settled []models.Bet, key func(models.Bet) string) []aggregate {
	byKey := map[string]*aggregate{}
	for _, bet := range settled {
		k := key(bet)
		if k == "" {
			continue
		}
		agg := byKey[k]
		if agg == nil {
			agg = &aggregate{key: k}
			byKey[k] = agg
		}
		agg.profit = agg.profit.Add(bet.NetResult())
		switch bet.Status {
		case models.StatusWon:
			agg.wins++
		case models.StatusLost:
			agg.losses++
		case models.StatusPush:
			agg.pushes++
		}
	}

	groups := make([]aggregate, 0, len(byKey))
	for _, agg := range byKey {
		groups = append(groups, *agg)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		if !groups[i].profit.Equal(groups[j].profit) {
			return groups[i].profit.GreaterThan(groups[j].profit)
		}
		return groups[i].key < groups[j].key
	})
	return groups
}

func hotCold(sports []aggregate) (hottest, coldest *models.SportPerformance) {
	if len(sports) == 0 {
		return nil, nil
	}
	if top := sports[0]; top.profit.IsPositive() {
		hottest = &models.SportPerformance{
			Sport:  top.key,
			Profit: top.profit,
			Record: record(top),
		}
	}
	if bottom := sports[len(sports)-1]; bottom.profit.IsNegative() {
		coldest = &models.SportPerformance{
			Sport:  bottom.key,
			Profit: bottom.profit,
			Record: record(bottom),
		}
	}
	return hottest, coldest
}

func record(agg aggregate) string {
	return fmt.Sprintf("%d-%d-%d", agg.wins, agg.losses, agg.pushes)
}

func bookTable(books []aggregate) []models.BookPerformance {
	table := make([]models.BookPerformance, 0, len(books))
	for _, agg := range books {
		winRate := 0.0
		if decided := agg.wins + agg.losses; decided > 0 {
			winRate = float64(agg.wins) / float64(decided) * 100
		}
		table = append(table, models.BookPerformance{
			Sportsbook: models.Sportsbook(agg.key),
			Profit:     agg.profit,
			Wins:       agg.wins,
			Losses:     agg.losses,
			Pushes:     agg.pushes,
			WinRatePct: winRate,
		})
	}
	return table
}

func leaderboard(picks []aggregate) []models.PickPerformance {
	top := make([]models.PickPerformance, 0, leaderboardSize)
	for _, agg := range picks {
		if agg.wins+agg.losses == 0 {
			continue
		}
		top = append(top, models.PickPerformance{
			Pick:   agg.key,
			Profit: agg.profit,
			Wins:   agg.wins,
			Losses: agg.losses,
			Pushes: agg.pushes,
		})
		if len(top) == leaderboardSize {
			break
		}
	}
	return top
}

// pickKey reduces a pick string to its first two tokens with digits,
// signs, and decimal points stripped, so "Lakers -5.5" and "Lakers -3"
// group together. Keys shorter than 3 characters fall back to the raw
// pick to keep short abbreviations apart.
func pickKey(pick string) string {
	tokens := strings.Fields(pick)
	if len(tokens) > 2 {
		tokens = tokens[:2]
	}
	joined := strings.Join(tokens, " ")
	stripped := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.' {
			return -1
		}
		return r
	}, joined)
	key := strings.TrimSpace(stripped)
	if len(key) < 3 {
		return pick
	}
	return key
}
