package storage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Transaction represents an immutable ledger entry. It references its user
// by phone number; no foreign key is enforced.
type Transaction struct {
	ID        int64
	UserPhone string
	Amount    decimal.Decimal
	Category  string
	CreatedAt time.Time
}

// CategoryTotal is one row of a per-category aggregation.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// TransactionFilter specifies filters for listing transactions.
type TransactionFilter struct {
	Limit int
}

// ITransactionTable defines the interface for transaction storage operations.
type ITransactionTable interface {
	CategoryTotals(ctx context.Context, userPhone string) ([]CategoryTotal, error)
	IncomeTotal(ctx context.Context, userPhone string) (decimal.Decimal, error)
	List(ctx context.Context, userPhone string, filter *TransactionFilter) ([]*Transaction, error)
}

var _ ITransactionTable = (*TransactionsTable)(nil)

type TransactionsTable struct {
	pool *pgxpool.Pool
}

func NewTransactionsTable(pool *pgxpool.Pool) *TransactionsTable {
	return &TransactionsTable{pool: pool}
}

// CategoryTotals sums the user's transaction amounts per category.
func (t *TransactionsTable) CategoryTotals(ctx context.Context, userPhone string) ([]CategoryTotal, error) {
	rows, err := t.pool.Query(ctx, `
		SELECT category, SUM(amount) AS total
		FROM transactions
		WHERE user_phone = $1
		GROUP BY category
		ORDER BY category`,
		userPhone,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []CategoryTotal
	for rows.Next() {
		var total CategoryTotal
		if err := rows.Scan(&total.Category, &total.Total); err != nil {
			return nil, err
		}
		totals = append(totals, total)
	}
	return totals, rows.Err()
}

// IncomeTotal sums the user's positive transaction amounts.
func (t *TransactionsTable) IncomeTotal(ctx context.Context, userPhone string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := t.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_phone = $1 AND amount > 0`,
		userPhone,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// List returns the user's most recent transactions. Nil filter uses no limit.
func (t *TransactionsTable) List(ctx context.Context, userPhone string, filter *TransactionFilter) ([]*Transaction, error) {
	query := `
		SELECT id, user_phone, amount, category, created_at
		FROM transactions
		WHERE user_phone = $1
		ORDER BY created_at DESC, id DESC`
	args := []interface{}{userPhone}
	if filter != nil && filter.Limit > 0 {
		query += ` LIMIT $2`
		args = append(args, filter.Limit)
	}

	rows, err := t.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Transaction
	for rows.Next() {
		transaction := &Transaction{}
		err := rows.Scan(
			&transaction.ID,
			&transaction.UserPhone,
			&transaction.Amount,
			&transaction.Category,
			&transaction.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, transaction)
	}
	return result, rows.Err()
}
