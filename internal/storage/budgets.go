package storage

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Budget is a global per-category spending limit. Budgets are written by the
// budget command and are not enforced against transactions anywhere.
type Budget struct {
	Category string
	Limit    decimal.Decimal
}

// IBudgetTable defines the interface for budget storage operations.
type IBudgetTable interface {
	Upsert(ctx context.Context, category string, limit decimal.Decimal) error
}

var _ IBudgetTable = (*BudgetsTable)(nil)

type BudgetsTable struct {
	pool *pgxpool.Pool
}

func NewBudgetsTable(pool *pgxpool.Pool) *BudgetsTable {
	return &BudgetsTable{pool: pool}
}

// Upsert creates or overwrites the budget for a category. Reapplying the
// same limit is a no-op on the row count: one row per category.
func (t *BudgetsTable) Upsert(ctx context.Context, category string, limit decimal.Decimal) error {
	_, err := t.pool.Exec(ctx, `
		INSERT INTO budgets (category, limit_amount)
		VALUES ($1, $2)
		ON CONFLICT (category) DO UPDATE
		SET limit_amount = EXCLUDED.limit_amount`,
		category, limit,
	)
	return err
}
