package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/parlaydev/betledger/pkg/models"
)

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS bets (
		id TEXT PRIMARY KEY,
		event_date TEXT NOT NULL,
		matchup TEXT NOT NULL,
		pick TEXT NOT NULL DEFAULT '',
		sport TEXT NOT NULL DEFAULT 'Other',
		sportsbook TEXT NOT NULL DEFAULT 'other',
		odds INTEGER NOT NULL DEFAULT 0,
		wager NUMERIC(14, 2) NOT NULL,
		potential_profit NUMERIC(14, 2) NOT NULL,
		status TEXT NOT NULL DEFAULT 'PENDING',
		created_at TIMESTAMPTZ NOT NULL,
		tags TEXT NOT NULL DEFAULT '[]'
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bets_status ON bets(status)`,
	`CREATE INDEX IF NOT EXISTS idx_bets_sport ON bets(sport)`,
	`CREATE INDEX IF NOT EXISTS idx_bets_created_at ON bets(created_at)`,
	`CREATE TABLE IF NOT EXISTS deposits (
		sportsbook TEXT PRIMARY KEY,
		amount NUMERIC(14, 2) NOT NULL DEFAULT 0
	)`,
}

// PostgresStore backs the tracker with a shared Postgres database
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects to Postgres and ensures the schema exists
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	for _, stmt := range postgresSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to ensure schema: %w", err)
		}
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

const postgresBetColumns = `id, event_date, matchup, pick, sport, sportsbook, odds, wager, potential_profit, status, created_at, tags`

func (s *PostgresStore) CreateBet(ctx context.Context, bet models.Bet) error {
	query := `
		INSERT INTO bets (` + postgresBetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := s.db.ExecContext(ctx, query, postgresBetArgs(bet)...)
	if err != nil {
		return fmt.Errorf("failed to insert bet: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetBet(ctx context.Context, id string) (models.Bet, error) {
	query := `SELECT ` + postgresBetColumns + ` FROM bets WHERE id = $1`

	bet, err := scanPostgresBet(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return models.Bet{}, ErrNotFound
	}
	if err != nil {
		return models.Bet{}, fmt.Errorf("failed to query bet: %w", err)
	}
	return bet, nil
}

func (s *PostgresStore) ListBets(ctx context.Context, filters models.BetFilters) ([]models.Bet, error) {
	query := `SELECT ` + postgresBetColumns + ` FROM bets`

	var conditions []string
	var args []any
	next := func() string { return fmt.Sprintf("$%d", len(args)+1) }

	if filters.Status != "" {
		conditions = append(conditions, "status = "+next())
		args = append(args, filters.Status)
	}
	if filters.Sport != "" {
		conditions = append(conditions, "sport = "+next())
		args = append(args, filters.Sport)
	}
	if filters.Sportsbook != "" {
		conditions = append(conditions, "sportsbook = "+next())
		args = append(args, filters.Sportsbook)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY created_at DESC"
	if filters.Limit > 0 {
		query += " LIMIT " + next()
		args = append(args, filters.Limit)
		if filters.Offset > 0 {
			query += " OFFSET " + next()
			args = append(args, filters.Offset)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bets: %w", err)
	}
	defer rows.Close()

	bets := make([]models.Bet, 0)
	for rows.Next() {
		bet, err := scanPostgresBet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bet: %w", err)
		}
		bets = append(bets, bet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bets: %w", err)
	}
	return bets, nil
}

func (s *PostgresStore) UpdateBet(ctx context.Context, bet models.Bet) error {
	query := `
		UPDATE bets
		SET event_date = $1, matchup = $2, pick = $3, sport = $4, sportsbook = $5,
		    odds = $6, wager = $7, potential_profit = $8, status = $9, tags = $10
		WHERE id = $11
	`

	result, err := s.db.ExecContext(ctx, query,
		bet.Date,
		bet.Matchup,
		bet.Pick,
		bet.Sport,
		string(bet.Sportsbook),
		bet.Odds,
		bet.Wager.String(),
		bet.PotentialProfit.String(),
		string(bet.Status),
		encodeTags(bet.Tags),
		bet.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update bet: %w", err)
	}
	return requireRow(result)
}

func (s *PostgresStore) UpdateBetStatus(ctx context.Context, id string, status models.BetStatus) (models.Bet, error) {
	result, err := s.db.ExecContext(ctx, `UPDATE bets SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return models.Bet{}, fmt.Errorf("failed to update status: %w", err)
	}
	if err := requireRow(result); err != nil {
		return models.Bet{}, err
	}
	return s.GetBet(ctx, id)
}

func (s *PostgresStore) DeleteBet(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM bets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete bet: %w", err)
	}
	return requireRow(result)
}

func (s *PostgresStore) ListDeposits(ctx context.Context) ([]models.BookDeposit, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT sportsbook, amount::TEXT FROM deposits ORDER BY sportsbook`)
	if err != nil {
		return nil, fmt.Errorf("failed to query deposits: %w", err)
	}
	defer rows.Close()

	return collectDeposits(rows)
}

func (s *PostgresStore) SetDeposit(ctx context.Context, deposit models.BookDeposit) error {
	query := `
		INSERT INTO deposits (sportsbook, amount) VALUES ($1, $2)
		ON CONFLICT (sportsbook) DO UPDATE SET amount = EXCLUDED.amount
	`

	_, err := s.db.ExecContext(ctx, query, string(deposit.Sportsbook), deposit.Amount.String())
	if err != nil {
		return fmt.Errorf("failed to set deposit: %w", err)
	}
	return nil
}

func (s *PostgresStore) ReplaceAll(ctx context.Context, snapshot models.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM bets`); err != nil {
		return fmt.Errorf("failed to clear bets: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM deposits`); err != nil {
		return fmt.Errorf("failed to clear deposits: %w", err)
	}

	insertBet := `
		INSERT INTO bets (` + postgresBetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	for _, bet := range snapshot.Bets {
		if _, err := tx.ExecContext(ctx, insertBet, postgresBetArgs(bet)...); err != nil {
			return fmt.Errorf("failed to insert bet %s: %w", bet.ID, err)
		}
	}

	insertDeposit := `
		INSERT INTO deposits (sportsbook, amount) VALUES ($1, $2)
		ON CONFLICT (sportsbook) DO UPDATE SET amount = EXCLUDED.amount
	`
	for _, deposit := range snapshot.Deposits {
		if _, err := tx.ExecContext(ctx, insertDeposit, string(deposit.Sportsbook), deposit.Amount.String()); err != nil {
			return fmt.Errorf("failed to insert deposit %s: %w", deposit.Sportsbook, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *PostgresStore) Snapshot(ctx context.Context) (models.Snapshot, error) {
	bets, err := s.ListBets(ctx, models.BetFilters{})
	if err != nil {
		return models.Snapshot{}, err
	}
	deposits, err := s.ListDeposits(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}
	return models.Snapshot{Bets: bets, Deposits: deposits}, nil
}

func postgresBetArgs(bet models.Bet) []any {
	return []any{
		bet.ID,
		bet.Date,
		bet.Matchup,
		bet.Pick,
		bet.Sport,
		string(bet.Sportsbook),
		bet.Odds,
		bet.Wager.String(),
		bet.PotentialProfit.String(),
		string(bet.Status),
		bet.CreatedAt.UTC(),
		encodeTags(bet.Tags),
	}
}

func scanPostgresBet(row rowScanner) (models.Bet, error) {
	var bet models.Bet
	var book, wager, profit, status, tags string
	var createdAt time.Time

	err := row.Scan(
		&bet.ID,
		&bet.Date,
		&bet.Matchup,
		&bet.Pick,
		&bet.Sport,
		&book,
		&bet.Odds,
		&wager,
		&profit,
		&status,
		&createdAt,
		&tags,
	)
	if err != nil {
		return models.Bet{}, err
	}

	return hydrateBet(bet, book, wager, profit, status, tags, func() (time.Time, error) {
		return createdAt, nil
	})
}
