package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// ILedger defines the write path that spans users and transactions.
type ILedger interface {
	RecordTransaction(ctx context.Context, userPhone string, amount decimal.Decimal, category string) error
}

var _ ILedger = (*Ledger)(nil)

type Ledger struct {
	pool *pgxpool.Pool
}

func NewLedger(pool *pgxpool.Pool) *Ledger {
	return &Ledger{pool: pool}
}

// RecordTransaction upserts the user's balance and appends the ledger entry
// in one database transaction, so the sum of a user's transactions always
// equals the user's balance.
func (l *Ledger) RecordTransaction(ctx context.Context, userPhone string, amount decimal.Decimal, category string) error {
	tx, err := l.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO users (phone_number, balance)
		VALUES ($1, $2)
		ON CONFLICT (phone_number) DO UPDATE
		SET balance = users.balance + EXCLUDED.balance`,
		userPhone, amount,
	)
	if err != nil {
		return fmt.Errorf("upsert balance: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO transactions (user_phone, amount, category)
		VALUES ($1, $2, $3)`,
		userPhone, amount, category,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	return tx.Commit(ctx)
}
