package bankroll

import (
	"github.com/shopspring/decimal"

	"github.com/parlaydev/betledger/pkg/models"
	"github.com/parlaydev/betledger/pkg/oddsmath"
)

// Stats derives the aggregate bankroll snapshot. Win/loss/push counts
// and totalWagered tally settled bets only; pending stakes still pull
// the current balance down. Every ratio over a possibly empty
// population is defined as 0.
func Stats(deposits []models.BookDeposit, bets []models.Bet) models.BankrollState {
	starting := decimal.Zero
	for _, dep := range deposits {
		starting = starting.Add(dep.Amount)
	}

	current := starting
	totalWagered := decimal.Zero
	totalWon := decimal.Zero
	totalLost := decimal.Zero
	flatUnits := decimal.Zero
	wins, losses, pushes := 0, 0, 0

	for _, bet := range bets {
		current = current.Add(settlementEffect(bet))
		if !bet.Status.Settled() {
			continue
		}
		totalWagered = totalWagered.Add(bet.Wager)
		switch bet.Status {
		case models.StatusWon:
			wins++
			totalWon = totalWon.Add(bet.PotentialProfit)
			flatUnits = flatUnits.Add(oddsmath.UnitProfit(bet.Odds))
		case models.StatusLost:
			losses++
			totalLost = totalLost.Add(bet.Wager)
			flatUnits = flatUnits.Sub(decimal.NewFromInt(1))
		case models.StatusPush:
			pushes++
		}
	}

	roiPct := 0.0
	if totalWagered.IsPositive() {
		roiPct = totalWon.Sub(totalLost).Div(totalWagered).InexactFloat64() * 100
	}

	flatROIPct := 0.0
	if decided := wins + losses; decided > 0 {
		flatROIPct = flatUnits.Div(decimal.NewFromInt(int64(decided))).InexactFloat64() * 100
	}

	return models.BankrollState{
		StartingBalance: starting,
		CurrentBalance:  current,
		TotalWagered:    totalWagered,
		TotalWon:        totalWon,
		TotalLost:       totalLost,
		TotalBets:       len(bets),
		Wins:            wins,
		Losses:          losses,
		Pushes:          pushes,
		ROIPct:          roiPct,
		FlatROIPct:      flatROIPct,
	}
}
