package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// User represents a user record. Users are created implicitly by the first
// recorded transaction and are never deleted.
type User struct {
	ID          int64
	PhoneNumber string
	Balance     decimal.Decimal
}

// IUserTable defines the interface for user storage operations.
type IUserTable interface {
	Balance(ctx context.Context, phoneNumber string) (decimal.Decimal, error)
}

var _ IUserTable = (*UsersTable)(nil)

type UsersTable struct {
	pool *pgxpool.Pool
}

func NewUsersTable(pool *pgxpool.Pool) *UsersTable {
	return &UsersTable{pool: pool}
}

// Balance returns the user's running balance, or zero when the user has
// never recorded a transaction.
func (t *UsersTable) Balance(ctx context.Context, phoneNumber string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := t.pool.QueryRow(ctx,
		`SELECT COALESCE(balance, 0) FROM users WHERE phone_number = $1`,
		phoneNumber,
	).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}
