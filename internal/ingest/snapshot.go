package ingest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/parlaydev/betledger/pkg/models"
	"github.com/parlaydev/betledger/pkg/oddsmath"
)

// ParseSnapshot decodes an import payload into a snapshot. Three
// shapes are accepted: a bare array of bets, an export object with
// bets and deposits, and the legacy object with a single bankroll
// number. Validation runs over the whole payload before anything is
// returned, so a bad record rejects the entire import.
func ParseSnapshot(raw []byte) (*models.Snapshot, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	var rawBets []any
	var rawDeposits []any
	var legacyBankroll *decimal.Decimal

	switch v := payload.(type) {
	case []any:
		rawBets = v
	case map[string]any:
		betsVal, ok := v["bets"]
		if !ok {
			return nil, errors.New("payload has no bets field")
		}
		rawBets, ok = betsVal.([]any)
		if !ok {
			return nil, errors.New("bets field is not an array")
		}
		if depositsVal, ok := v["deposits"]; ok {
			rawDeposits, ok = depositsVal.([]any)
			if !ok {
				return nil, errors.New("deposits field is not an array")
			}
		}
		if bankrollVal, ok := v["bankroll"]; ok {
			amount, err := toDecimal(bankrollVal)
			if err != nil {
				return nil, fmt.Errorf("bankroll: %w", err)
			}
			legacyBankroll = &amount
		}
	default:
		return nil, errors.New("unrecognized payload shape")
	}

	snapshot := &models.Snapshot{
		Bets:     make([]models.Bet, 0, len(rawBets)),
		Deposits: make([]models.BookDeposit, 0, len(rawDeposits)),
	}
	now := time.Now().UTC()

	for i, rawBet := range rawBets {
		bet, err := parseBetRecord(rawBet, now)
		if err != nil {
			return nil, fmt.Errorf("bet %d: %w", i, err)
		}
		snapshot.Bets = append(snapshot.Bets, bet)
	}

	for i, rawDeposit := range rawDeposits {
		deposit, err := parseDepositRecord(rawDeposit)
		if err != nil {
			return nil, fmt.Errorf("deposit %d: %w", i, err)
		}
		snapshot.Deposits = append(snapshot.Deposits, deposit)
	}

	// Legacy payloads tracked one undifferentiated bankroll. It maps
	// to a deposit on the catch-all book so balances still reconcile.
	if legacyBankroll != nil && len(snapshot.Deposits) == 0 {
		snapshot.Deposits = append(snapshot.Deposits, models.BookDeposit{
			Sportsbook: models.BookOther,
			Amount:     *legacyBankroll,
		})
	}

	return snapshot, nil
}

func parseBetRecord(raw any, now time.Time) (models.Bet, error) {
	rec, ok := raw.(map[string]any)
	if !ok {
		return models.Bet{}, errors.New("record is not an object")
	}

	date, _ := getString(rec, "date")
	if strings.TrimSpace(date) == "" {
		return models.Bet{}, errors.New("missing date")
	}

	matchup, _ := getString(rec, "matchup")
	pick, _ := getString(rec, "pick")

	wagerVal, ok := getValue(rec, "wager")
	if !ok {
		return models.Bet{}, errors.New("missing wager")
	}
	wager, err := toDecimal(wagerVal)
	if err != nil {
		return models.Bet{}, fmt.Errorf("wager: %w", err)
	}
	if !wager.IsPositive() {
		return models.Bet{}, errors.New("wager must be positive")
	}

	odds := 0
	if oddsVal, ok := getValue(rec, "odds"); ok {
		odds, err = toInt(oddsVal)
		if err != nil {
			return models.Bet{}, fmt.Errorf("odds: %w", err)
		}
	}

	status := models.StatusPending
	if rawStatus, ok := getString(rec, "status"); ok && strings.TrimSpace(rawStatus) != "" {
		status, err = models.ParseStatus(rawStatus)
		if err != nil {
			return models.Bet{}, err
		}
	}

	// Stored profits are kept so hand-settled records survive a round
	// trip; anything absent or non-positive is recomputed.
	profit := decimal.Zero
	if profitVal, ok := getValue(rec, "potential_profit", "potentialProfit"); ok {
		profit, err = toDecimal(profitVal)
		if err != nil {
			return models.Bet{}, fmt.Errorf("potential profit: %w", err)
		}
	}
	if !profit.IsPositive() {
		profit = oddsmath.PotentialProfit(wager, odds)
	}

	id, _ := getString(rec, "id")
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}

	createdAt := now
	if rawCreated, ok := getString(rec, "created_at", "createdAt"); ok && strings.TrimSpace(rawCreated) != "" {
		parsed, err := time.Parse(time.RFC3339, rawCreated)
		if err != nil {
			return models.Bet{}, fmt.Errorf("created_at: %w", err)
		}
		createdAt = parsed
	}

	sport, _ := getString(rec, "sport")
	book, _ := getString(rec, "sportsbook")

	var tags []string
	if rawTags, ok := getValue(rec, "tags"); ok {
		if list, ok := rawTags.([]any); ok {
			for _, item := range list {
				if tag, ok := item.(string); ok && strings.TrimSpace(tag) != "" {
					tags = append(tags, strings.TrimSpace(tag))
				}
			}
		}
	}

	return models.Bet{
		ID:              id,
		Date:            strings.TrimSpace(date),
		Matchup:         strings.TrimSpace(matchup),
		Pick:            strings.TrimSpace(pick),
		Sport:           resolveSport(sport, matchup, pick, date),
		Sportsbook:      NormalizeBook(book),
		Odds:            odds,
		Wager:           wager,
		PotentialProfit: profit,
		Status:          status,
		CreatedAt:       createdAt,
		Tags:            tags,
	}, nil
}

func parseDepositRecord(raw any) (models.BookDeposit, error) {
	rec, ok := raw.(map[string]any)
	if !ok {
		return models.BookDeposit{}, errors.New("record is not an object")
	}

	book, _ := getString(rec, "sportsbook")
	amountVal, ok := getValue(rec, "amount")
	if !ok {
		return models.BookDeposit{}, errors.New("missing amount")
	}
	amount, err := toDecimal(amountVal)
	if err != nil {
		return models.BookDeposit{}, fmt.Errorf("amount: %w", err)
	}

	return models.BookDeposit{
		Sportsbook: NormalizeBook(book),
		Amount:     amount,
	}, nil
}

// getValue returns the first present key, checking snake_case and
// camelCase spellings so exports from older builds still load.
func getValue(rec map[string]any, keys ...string) (any, bool) {
	for _, key := range keys {
		if val, ok := rec[key]; ok {
			return val, true
		}
	}
	return nil, false
}

func getString(rec map[string]any, keys ...string) (string, bool) {
	val, ok := getValue(rec, keys...)
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

func toDecimal(val any) (decimal.Decimal, error) {
	switch v := val.(type) {
	case json.Number:
		return decimal.NewFromString(v.String())
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return decimal.Zero, errors.New("empty amount")
		}
		return decimal.NewFromString(trimmed)
	default:
		return decimal.Zero, fmt.Errorf("not a number: %v", val)
	}
}

func toInt(val any) (int, error) {
	d, err := toDecimal(val)
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("not an integer: %s", d)
	}
	return int(d.IntPart()), nil
}
