package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// DBTX is satisfied by *sql.DB and *sql.Tx so repos can run inside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// PlacedOrder represents a submitted order row with its lines.
type PlacedOrder struct {
	ID       string
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
	PlacedAt time.Time
	Lines    []OrderLine
}

// OrderLine is one chosen item, snapshotted at checkout so later menu edits
// do not rewrite history.
type OrderLine struct {
	Course string
	ItemID string
	Name   string
	Price  decimal.Decimal
}
