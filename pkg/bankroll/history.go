package bankroll

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/parlaydev/betledger/pkg/models"
)

// History replays settled bets in event-date order into a cumulative
// balance series. Bets sharing a date merge into a single point, and a
// synthetic Start point leads the series even when no settled history
// exists. Pending bets are invisible here until they settle.
func History(startingBalance decimal.Decimal, bets []models.Bet) []models.BankrollHistoryPoint {
	nets := map[string]decimal.Decimal{}
	for _, bet := range bets {
		if !bet.Status.Settled() {
			continue
		}
		nets[bet.Date] = nets[bet.Date].Add(bet.NetResult())
	}

	dates := make([]string, 0, len(nets))
	for date := range nets {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	points := make([]models.BankrollHistoryPoint, 0, len(dates)+1)
	points = append(points, models.BankrollHistoryPoint{
		Date:          "Start",
		Balance:       startingBalance,
		FormattedDate: "Start",
	})

	running := startingBalance
	for _, date := range dates {
		running = running.Add(nets[date])
		points = append(points, models.BankrollHistoryPoint{
			Date:          date,
			Balance:       running,
			FormattedDate: formatDate(date),
		})
	}
	return points
}

func formatDate(date string) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return parsed.Format("Jan 2")
}
