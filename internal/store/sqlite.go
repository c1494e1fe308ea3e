package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/parlaydev/betledger/pkg/models"
)

// Timestamps are stored as fixed-width UTC strings so the stored
// order matches chronological order.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore keeps everything in a single local database file
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path and brings
// the schema up to date from the migrations directory.
func NewSQLiteStore(path, migrationsPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite handles one writer at a time
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(db, migrationsPath); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func runMigrations(db *sql.DB, migrationsPath string) error {
	driver, err := sqlitemigrate.WithInstance(db, &sqlitemigrate.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"sqlite3", driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

const sqliteBetColumns = `id, event_date, matchup, pick, sport, sportsbook, odds, wager, potential_profit, status, created_at, tags`

func (s *SQLiteStore) CreateBet(ctx context.Context, bet models.Bet) error {
	query := `
		INSERT INTO bets (` + sqliteBetColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query, sqliteBetArgs(bet)...)
	if err != nil {
		return fmt.Errorf("failed to insert bet: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetBet(ctx context.Context, id string) (models.Bet, error) {
	query := `SELECT ` + sqliteBetColumns + ` FROM bets WHERE id = ?`

	bet, err := scanSQLiteBet(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return models.Bet{}, ErrNotFound
	}
	if err != nil {
		return models.Bet{}, fmt.Errorf("failed to query bet: %w", err)
	}
	return bet, nil
}

func (s *SQLiteStore) ListBets(ctx context.Context, filters models.BetFilters) ([]models.Bet, error) {
	query := `SELECT ` + sqliteBetColumns + ` FROM bets`

	var conditions []string
	var args []any
	if filters.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, filters.Status)
	}
	if filters.Sport != "" {
		conditions = append(conditions, "sport = ?")
		args = append(args, filters.Sport)
	}
	if filters.Sportsbook != "" {
		conditions = append(conditions, "sportsbook = ?")
		args = append(args, filters.Sportsbook)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY created_at DESC"
	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
		if filters.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, filters.Offset)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bets: %w", err)
	}
	defer rows.Close()

	return collectSQLiteBets(rows)
}

func (s *SQLiteStore) UpdateBet(ctx context.Context, bet models.Bet) error {
	query := `
		UPDATE bets
		SET event_date = ?, matchup = ?, pick = ?, sport = ?, sportsbook = ?,
		    odds = ?, wager = ?, potential_profit = ?, status = ?, tags = ?
		WHERE id = ?
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

func (s *SQLiteStore) UpdateBetStatus(ctx context.Context, id string, status models.BetStatus) (models.Bet, error) {
	result, err := s.db.ExecContext(ctx, `UPDATE bets SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return models.Bet{}, fmt.Errorf("failed to update status: %w", err)
	}
	if err := requireRow(result); err != nil {
		return models.Bet{}, err
	}
	return s.GetBet(ctx, id)
}

func (s *SQLiteStore) DeleteBet(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM bets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete bet: %w", err)
	}
	return requireRow(result)
}

func (s *SQLiteStore) ListDeposits(ctx context.Context) ([]models.BookDeposit, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT sportsbook, amount FROM deposits ORDER BY sportsbook`)
	if err != nil {
		return nil, fmt.Errorf("failed to query deposits: %w", err)
	}
	defer rows.Close()

	return collectDeposits(rows)
}

func (s *SQLiteStore) SetDeposit(ctx context.Context, deposit models.BookDeposit) error {
	query := `
		INSERT INTO deposits (sportsbook, amount) VALUES (?, ?)
		ON CONFLICT(sportsbook) DO UPDATE SET amount = excluded.amount
	`

	_, err := s.db.ExecContext(ctx, query, string(deposit.Sportsbook), deposit.Amount.String())
	if err != nil {
		return fmt.Errorf("failed to set deposit: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ReplaceAll(ctx context.Context, snapshot models.Snapshot) error {
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
		INSERT INTO bets (` + sqliteBetColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	for _, bet := range snapshot.Bets {
		if _, err := tx.ExecContext(ctx, insertBet, sqliteBetArgs(bet)...); err != nil {
			return fmt.Errorf("failed to insert bet %s: %w", bet.ID, err)
		}
	}

	insertDeposit := `
		INSERT INTO deposits (sportsbook, amount) VALUES (?, ?)
		ON CONFLICT(sportsbook) DO UPDATE SET amount = excluded.amount
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

func (s *SQLiteStore) Snapshot(ctx context.Context) (models.Snapshot, error) {
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

func sqliteBetArgs(bet models.Bet) []any {
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
		bet.CreatedAt.UTC().Format(sqliteTimeLayout),
		encodeTags(bet.Tags),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteBet(row rowScanner) (models.Bet, error) {
	var bet models.Bet
	var book, wager, profit, status, createdAt, tags string

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
		return time.Parse(time.RFC3339Nano, createdAt)
	})
}

func collectSQLiteBets(rows *sql.Rows) ([]models.Bet, error) {
	bets := make([]models.Bet, 0)
	for rows.Next() {
		bet, err := scanSQLiteBet(rows)
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

func collectDeposits(rows *sql.Rows) ([]models.BookDeposit, error) {
	deposits := make([]models.BookDeposit, 0)
	for rows.Next() {
		var book, amount string
		if err := rows.Scan(&book, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan deposit: %w", err)
		}
		parsed, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("bad deposit amount %q: %w", amount, err)
		}
		deposits = append(deposits, models.BookDeposit{
			Sportsbook: models.Sportsbook(book),
			Amount:     parsed,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating deposits: %w", err)
	}
	return deposits, nil
}

func hydrateBet(bet models.Bet, book, wager, profit, status, tags string, parseCreated func() (time.Time, error)) (models.Bet, error) {
	var err error
	bet.Sportsbook = models.Sportsbook(book)
	bet.Status = models.BetStatus(status)

	bet.Wager, err = decimal.NewFromString(wager)
	if err != nil {
		return models.Bet{}, fmt.Errorf("bad wager %q: %w", wager, err)
	}
	bet.PotentialProfit, err = decimal.NewFromString(profit)
	if err != nil {
		return models.Bet{}, fmt.Errorf("bad potential profit %q: %w", profit, err)
	}
	bet.CreatedAt, err = parseCreated()
	if err != nil {
		return models.Bet{}, fmt.Errorf("bad created_at: %w", err)
	}
	if err := json.Unmarshal([]byte(tags), &bet.Tags); err != nil {
		return models.Bet{}, fmt.Errorf("bad tags %q: %w", tags, err)
	}
	return bet, nil
}

func encodeTags(tags []string) string {
	if len(tags) == 0 {
		return "[]"
	}
	encoded, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}
	return string(encoded)
}

func requireRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
