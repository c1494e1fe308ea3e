// Package bankroll derives balances, ROI metrics, and the cumulative
// balance series from a bet collection and its deposit ledger. Every
// function is a pure fold over the inputs; callers pass stable
// snapshots and get freshly allocated results back.
package bankroll

import (
	"github.com/shopspring/decimal"

	"github.com/parlaydev/betledger/pkg/models"
)

// BookBalances folds per-bet settlement effects into one balance row
// per known sportsbook, zero-activity books included. Unrecognized book
// keys on bets or deposits land in the Other bucket.
func BookBalances(bets []models.Bet, deposits []models.BookDeposit) []models.BookBalance {
	deposited := map[models.Sportsbook]decimal.Decimal{}
	for _, dep := range deposits {
		book := dep.Sportsbook
		if !book.Known() {
			book = models.BookOther
		}
		deposited[book] = deposited[book].Add(dep.Amount)
	}

	effects := map[models.Sportsbook]decimal.Decimal{}
	for _, bet := range bets {
		book := bet.Sportsbook
		if !book.Known() {
			book = models.BookOther
		}
		effects[book] = effects[book].Add(settlementEffect(bet))
	}

	balances := make([]models.BookBalance, 0, len(models.KnownBooks))
	for _, info := range models.KnownBooks {
		dep := deposited[info.Key]
		balances = append(balances, models.BookBalance{
			Sportsbook:     info.Key,
			Label:          info.Label,
			Color:          info.Color,
			Deposited:      dep,
			CurrentBalance: dep.Add(effects[info.Key]),
		})
	}
	return balances
}

// settlementEffect is the running-balance impact of one bet. A pending
// stake is money at risk and reduces the spendable balance even though
// it settles later; a push returns the stake untouched.
func settlementEffect(bet models.Bet) decimal.Decimal {
	if bet.Status == models.StatusPending {
		return bet.Wager.Neg()
	}
	return bet.NetResult()
}
