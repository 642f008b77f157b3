package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tally-networks/finance-bot/internal/storage"
)

const defaultListLimit = 20

var (
	savingsRatioThreshold = decimal.NewFromFloat(0.30)
	investedShare         = decimal.NewFromFloat(0.50)
)

// FinanceService handles the ledger commands: balance, record, budget, invest.
type FinanceService struct {
	storage *storage.Storage
}

// NewFinanceService creates a new FinanceService.
func NewFinanceService(store *storage.Storage) *FinanceService {
	return &FinanceService{storage: store}
}

// Balance returns the user's running balance, zero for unknown users.
func (s *FinanceService) Balance(ctx context.Context, userPhone string) (decimal.Decimal, error) {
	return s.storage.Users.Balance(ctx, userPhone)
}

// RecordTransaction adds the signed amount to the user's balance and appends
// the ledger entry. Both writes happen in one database transaction.
func (s *FinanceService) RecordTransaction(ctx context.Context, userPhone string, amount decimal.Decimal, category string) error {
	return s.storage.Ledger.RecordTransaction(ctx, userPhone, amount, category)
}

// SetBudget creates or overwrites the global limit for a category.
func (s *FinanceService) SetBudget(ctx context.Context, category string, limit decimal.Decimal) error {
	return s.storage.Budgets.Upsert(ctx, category, limit)
}

// SuggestInvestment applies the decision rule: when savings (the balance)
// exceed 30% of income (the sum of positive transactions), suggest investing
// half of savings; otherwise suggest reducing debt first.
func (s *FinanceService) SuggestInvestment(ctx context.Context, userPhone string) (InvestmentAdvice, error) {
	income, err := s.storage.Transactions.IncomeTotal(ctx, userPhone)
	if err != nil {
		return InvestmentAdvice{}, err
	}

	savings, err := s.storage.Users.Balance(ctx, userPhone)
	if err != nil {
		return InvestmentAdvice{}, err
	}

	if savings.GreaterThan(income.Mul(savingsRatioThreshold)) {
		return InvestmentAdvice{
			Invest: true,
			Amount: savings.Mul(investedShare),
		}, nil
	}

	return InvestmentAdvice{Invest: false, Amount: decimal.Zero}, nil
}

// ListTransactions returns the user's most recent transactions, newest first.
func (s *FinanceService) ListTransactions(ctx context.Context, userPhone string, limit int) ([]Transaction, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.storage.Transactions.List(ctx, userPhone, &storage.TransactionFilter{Limit: limit})
	if err != nil {
		return nil, err
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = Transaction{
			ID:        row.ID,
			UserPhone: row.UserPhone,
			Amount:    row.Amount,
			Category:  row.Category,
			CreatedAt: row.CreatedAt,
		}
	}

	return convertedTransactions, nil
}
