// Package notify pushes settlement results to Slack via webhook.
// Configuration without a webhook URL disables it entirely.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/parlaydev/betledger/pkg/models"
)

// SlackNotifier sends settlement messages to a Slack webhook
type SlackNotifier struct {
	webhookURL string
	httpClient *http.Client
}

// NewSlackNotifier creates a notifier. An empty webhookURL produces a
// notifier whose sends are no-ops.
func NewSlackNotifier(webhookURL string) *SlackNotifier {
	return &SlackNotifier{
		webhookURL: webhookURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Enabled reports whether a webhook is configured
func (s *SlackNotifier) Enabled() bool {
	return s.webhookURL != ""
}

// BetSettled announces a settled bet, the resulting bankroll, and the
// current streak. A zero streak is left out of the message.
func (s *SlackNotifier) BetSettled(ctx context.Context, bet models.Bet, balance decimal.Decimal, streak int) error {
	if !s.Enabled() {
		return nil
	}
	return s.post(ctx, s.formatSettlement(bet, balance, streak))
}

// Startup announces that the tracker came online
func (s *SlackNotifier) Startup(ctx context.Context) error {
	if !s.Enabled() {
		return nil
	}

	message := fmt.Sprintf(
		"🚀 *BetLedger online*\n_Started: %s_",
		time.Now().Format("2006-01-02 15:04:05 MST"),
	)
	return s.post(ctx, message)
}

func (s *SlackNotifier) formatSettlement(bet models.Bet, balance decimal.Decimal, streak int) string {
	var sb strings.Builder

	switch bet.Status {
	case models.StatusWon:
		sb.WriteString(fmt.Sprintf("💰 *BET WON* | +$%s\n", bet.PotentialProfit.StringFixed(2)))
	case models.StatusLost:
		sb.WriteString(fmt.Sprintf("📉 *BET LOST* | -$%s\n", bet.Wager.StringFixed(2)))
	case models.StatusPush:
		sb.WriteString("🔁 *BET PUSHED* | wager returned\n")
	default:
		sb.WriteString("📊 *BET UPDATED*\n")
	}

	sb.WriteString(fmt.Sprintf("*%s*\n", bet.Matchup))
	if bet.Pick != "" {
		sb.WriteString(fmt.Sprintf("%s @ %s\n", bet.Pick, formatOdds(bet.Odds)))
	}
	sb.WriteString(fmt.Sprintf("*Book:* %s | *Wager:* $%s\n", bet.Sportsbook.Info().Label, bet.Wager.StringFixed(2)))

	footer := fmt.Sprintf("Bankroll: $%s", balance.StringFixed(2))
	if streak > 0 {
		footer += fmt.Sprintf(" | Streak: W%d", streak)
	} else if streak < 0 {
		footer += fmt.Sprintf(" | Streak: L%d", -streak)
	}
	sb.WriteString(fmt.Sprintf("\n_%s_", footer))

	return sb.String()
}

func (s *SlackNotifier) post(ctx context.Context, message string) error {
	payload := map[string]any{
		"text": message,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal Slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.webhookURL, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Slack webhook returned status %d", resp.StatusCode)
	}
	return nil
}

func formatOdds(american int) string {
	if american > 0 {
		return fmt.Sprintf("+%d", american)
	}
	return fmt.Sprintf("%d", american)
}
