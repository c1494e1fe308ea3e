// Package store persists bets and book deposits. Two backends
// implement the same interface: SQLite for the single-user local
// setup and Postgres for a shared deployment.
package store

import (
	"context"
	"errors"

	"github.com/parlaydev/betledger/pkg/models"
)

// ErrNotFound is returned when a bet id has no matching row
var ErrNotFound = errors.New("bet not found")

// Store is the persistence surface the handlers depend on
type Store interface {
	// Ping verifies the backing database is reachable
	Ping(ctx context.Context) error

	CreateBet(ctx context.Context, bet models.Bet) error
	GetBet(ctx context.Context, id string) (models.Bet, error)
	ListBets(ctx context.Context, filters models.BetFilters) ([]models.Bet, error)
	UpdateBet(ctx context.Context, bet models.Bet) error
	UpdateBetStatus(ctx context.Context, id string, status models.BetStatus) (models.Bet, error)
	DeleteBet(ctx context.Context, id string) error

	ListDeposits(ctx context.Context) ([]models.BookDeposit, error)
	SetDeposit(ctx context.Context, deposit models.BookDeposit) error

	// ReplaceAll swaps the entire dataset in one transaction. Used by
	// snapshot import and restore, where partial application would
	// leave the ledger inconsistent.
	ReplaceAll(ctx context.Context, snapshot models.Snapshot) error

	// Snapshot reads every bet and deposit for export and backups
	Snapshot(ctx context.Context) (models.Snapshot, error)

	Close() error
}
