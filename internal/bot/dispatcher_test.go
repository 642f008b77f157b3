package bot

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tally-networks/finance-bot/internal/classifier"
	"github.com/tally-networks/finance-bot/internal/service"
)

const testSender = "+15551234567"

type mockFinanceService struct {
	mock.Mock
}

func (m *mockFinanceService) Balance(ctx context.Context, userPhone string) (decimal.Decimal, error) {
	args := m.Called(ctx, userPhone)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockFinanceService) RecordTransaction(ctx context.Context, userPhone string, amount decimal.Decimal, category string) error {
	args := m.Called(ctx, userPhone, amount, category)
	return args.Error(0)
}

func (m *mockFinanceService) SetBudget(ctx context.Context, category string, limit decimal.Decimal) error {
	args := m.Called(ctx, category, limit)
	return args.Error(0)
}

func (m *mockFinanceService) SuggestInvestment(ctx context.Context, userPhone string) (service.InvestmentAdvice, error) {
	args := m.Called(ctx, userPhone)
	return args.Get(0).(service.InvestmentAdvice), args.Error(1)
}

type mockReportService struct {
	mock.Mock
}

func (m *mockReportService) CategoryReport(ctx context.Context, userPhone string) (string, error) {
	args := m.Called(ctx, userPhone)
	return args.String(0), args.Error(1)
}

func newTestDispatcher(t *testing.T) (*Dispatcher, *mockFinanceService, *mockReportService) {
	t.Helper()
	finance := new(mockFinanceService)
	reports := new(mockReportService)
	d := NewDispatcher(classifier.NewKeywordClassifier(), finance, reports)
	return d, finance, reports
}

func TestDispatch_Balance(t *testing.T) {
	d, finance, _ := newTestDispatcher(t)
	finance.On("Balance", mock.Anything, testSender).
		Return(decimal.RequireFromString("123.456"), nil)

	reply := d.Dispatch(context.Background(), "balance please", testSender)

	assert.Equal(t, "Your current balance is: $123.46", reply.Text)
	assert.False(t, reply.IsMedia())
	finance.AssertExpectations(t)
}

func TestDispatch_BalanceForUnknownUser(t *testing.T) {
	d, finance, _ := newTestDispatcher(t)
	finance.On("Balance", mock.Anything, testSender).Return(decimal.Zero, nil)

	reply := d.Dispatch(context.Background(), "balance", testSender)

	assert.Equal(t, "Your current balance is: $0.00", reply.Text)
}

func TestDispatch_PriorityBalanceBeforeAdd(t *testing.T) {
	d, finance, _ := newTestDispatcher(t)
	finance.On("Balance", mock.Anything, testSender).Return(decimal.Zero, nil)

	// "balance" is tested before "add", first match wins.
	reply := d.Dispatch(context.Background(), "add to my balance", testSender)

	assert.Equal(t, "Your current balance is: $0.00", reply.Text)
	finance.AssertNotCalled(t, "RecordTransaction")
}

func TestDispatch_Add(t *testing.T) {
	d, finance, _ := newTestDispatcher(t)
	finance.On("RecordTransaction", mock.Anything, testSender,
		mock.MatchedBy(func(amount decimal.Decimal) bool {
			return amount.Equal(decimal.RequireFromString("50.25"))
		}), "groceries").Return(nil)

	reply := d.Dispatch(context.Background(), "add 50.25 groceries", testSender)

	assert.Equal(t, "Transaction recorded successfully!", reply.Text)
	finance.AssertExpectations(t)
}

func TestDispatch_AddNegativeAmountDefaultCategory(t *testing.T) {
	d, finance, _ := newTestDispatcher(t)
	finance.On("RecordTransaction", mock.Anything, testSender,
		mock.MatchedBy(func(amount decimal.Decimal) bool {
			return amount.Equal(decimal.RequireFromString("-12"))
		}), "Other").Return(nil)

	reply := d.Dispatch(context.Background(), "add -12", testSender)

	assert.Equal(t, "Transaction recorded successfully!", reply.Text)
	finance.AssertExpectations(t)
}

func TestDispatch_AddNonNumericAmount(t *testing.T) {
	d, finance, _ := newTestDispatcher(t)

	reply := d.Dispatch(context.Background(), "add abc", testSender)

	assert.Equal(t, "Error: amount must be a number, got: abc", reply.Text)
	finance.AssertNotCalled(t, "RecordTransaction")
}

func TestDispatch_AddStoreError(t *testing.T) {
	d, finance, _ := newTestDispatcher(t)
	finance.On("RecordTransaction", mock.Anything, testSender, mock.Anything, mock.Anything).
		Return(errors.New("database unavailable"))

	reply := d.Dispatch(context.Background(), "add 10", testSender)

	assert.Equal(t, "Error: database unavailable", reply.Text)
}

func TestDispatch_Report(t *testing.T) {
	d, _, reports := newTestDispatcher(t)
	reports.On("CategoryReport", mock.Anything, testSender).
		Return("reports/report_15551234567_abc.png", nil)

	reply := d.Dispatch(context.Background(), "report", testSender)

	assert.Equal(t, "Your spending report:", reply.Text)
	assert.True(t, reply.IsMedia())
	assert.Equal(t, "reports/report_15551234567_abc.png", reply.MediaPath)
}

func TestDispatch_ReportWithoutTransactions(t *testing.T) {
	d, _, reports := newTestDispatcher(t)
	reports.On("CategoryReport", mock.Anything, testSender).
		Return("", service.ErrNoTransactions)

	reply := d.Dispatch(context.Background(), "report", testSender)

	assert.False(t, reply.IsMedia())
	assert.Contains(t, reply.Text, "No transactions recorded yet")
}

func TestDispatch_Budget(t *testing.T) {
	d, finance, _ := newTestDispatcher(t)
	finance.On("SetBudget", mock.Anything, "food",
		mock.MatchedBy(func(limit decimal.Decimal) bool {
			return limit.Equal(decimal.RequireFromString("300"))
		})).Return(nil)

	reply := d.Dispatch(context.Background(), "budget food 300", testSender)

	assert.Equal(t, "Budget for food set at $300.00", reply.Text)
	finance.AssertExpectations(t)
}

func TestDispatch_BudgetMissingLimit(t *testing.T) {
	d, finance, _ := newTestDispatcher(t)

	reply := d.Dispatch(context.Background(), "budget food", testSender)

	assert.Contains(t, reply.Text, "Error: ")
	finance.AssertNotCalled(t, "SetBudget")
}

func TestDispatch_InvestRecommendsInvesting(t *testing.T) {
	d, finance, _ := newTestDispatcher(t)
	finance.On("SuggestInvestment", mock.Anything, testSender).
		Return(service.InvestmentAdvice{
			Invest: true,
			Amount: decimal.RequireFromString("200"),
		}, nil)

	reply := d.Dispatch(context.Background(), "invest", testSender)

	assert.Equal(t, "Suggestion: invest $200.00 in an index fund!", reply.Text)
}

func TestDispatch_InvestRecommendsReducingDebt(t *testing.T) {
	d, finance, _ := newTestDispatcher(t)
	finance.On("SuggestInvestment", mock.Anything, testSender).
		Return(service.InvestmentAdvice{Invest: false, Amount: decimal.Zero}, nil)

	reply := d.Dispatch(context.Background(), "invest", testSender)

	assert.Equal(t, "Focus on reducing debt before investing.", reply.Text)
}

func TestDispatch_UnrecognizedCommand(t *testing.T) {
	d, finance, reports := newTestDispatcher(t)

	reply := d.Dispatch(context.Background(), "hello", testSender)

	assert.Equal(t, "Command not recognized. Try: balance, add, report, budget", reply.Text)
	finance.AssertNotCalled(t, "Balance")
	finance.AssertNotCalled(t, "RecordTransaction")
	reports.AssertNotCalled(t, "CategoryReport")
}
