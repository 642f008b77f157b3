package storage

import (
	"context"
	"fmt"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Storage bundles the per-table accessors over one shared connection pool.
// The fields are interfaces so services can be tested against mocks.
type Storage struct {
	Pool         *pgxpool.Pool
	Users        IUserTable
	Transactions ITransactionTable
	Budgets      IBudgetTable
	Ledger       ILedger
}

func NewStorage(ctx context.Context, databaseURL string) (*Storage, error) {
	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database URL: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		// NUMERIC columns scan directly into decimal.Decimal.
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	return &Storage{
		Pool:         pool,
		Users:        NewUsersTable(pool),
		Transactions: NewTransactionsTable(pool),
		Budgets:      NewBudgetsTable(pool),
		Ledger:       NewLedger(pool),
	}, nil
}

func (s *Storage) Close() {
	s.Pool.Close()
}
