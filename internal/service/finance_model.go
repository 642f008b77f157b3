package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a ledger entry in the service layer.
type Transaction struct {
	ID        int64
	UserPhone string
	Amount    decimal.Decimal
	Category  string
	CreatedAt time.Time
}

// InvestmentAdvice is the outcome of the investment decision rule.
type InvestmentAdvice struct {
	// Invest is true when savings exceed 30% of income.
	Invest bool
	// Amount is half of savings when Invest is true, zero otherwise.
	Amount decimal.Decimal
}
