package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tally-networks/finance-bot/internal/report"
	"github.com/tally-networks/finance-bot/internal/storage"
)

type mockRenderer struct {
	mock.Mock
}

func (m *mockRenderer) Render(name string, slices []report.Slice) (string, error) {
	args := m.Called(name, slices)
	return args.String(0), args.Error(1)
}

func newTestReportService(t *testing.T) (*ReportService, *mockTransactionTable, *mockRenderer) {
	t.Helper()
	transactions := new(mockTransactionTable)
	renderer := new(mockRenderer)
	store := &storage.Storage{Transactions: transactions}
	return NewReportService(store, renderer), transactions, renderer
}

func TestCategoryReport_RendersTotals(t *testing.T) {
	svc, transactions, renderer := newTestReportService(t)
	transactions.On("CategoryTotals", mock.Anything, testPhone).
		Return([]storage.CategoryTotal{
			{Category: "food", Total: decimal.RequireFromString("-120.50")},
			{Category: "salary", Total: decimal.RequireFromString("1000")},
		}, nil)
	renderer.On("Render", testPhone, mock.MatchedBy(func(slices []report.Slice) bool {
		return len(slices) == 2 &&
			slices[0].Label == "food" &&
			slices[1].Label == "salary"
	})).Return("reports/report_15551234567_abc.png", nil)

	artifactPath, err := svc.CategoryReport(context.Background(), testPhone)

	assert.NoError(t, err)
	assert.Equal(t, "reports/report_15551234567_abc.png", artifactPath)
	renderer.AssertExpectations(t)
}

func TestCategoryReport_NoTransactions(t *testing.T) {
	svc, transactions, renderer := newTestReportService(t)
	transactions.On("CategoryTotals", mock.Anything, testPhone).
		Return([]storage.CategoryTotal{}, nil)

	artifactPath, err := svc.CategoryReport(context.Background(), testPhone)

	assert.ErrorIs(t, err, ErrNoTransactions)
	assert.Empty(t, artifactPath)
	renderer.AssertNotCalled(t, "Render")
}

func TestCategoryReport_StoreError(t *testing.T) {
	svc, transactions, renderer := newTestReportService(t)
	transactions.On("CategoryTotals", mock.Anything, testPhone).
		Return(nil, errors.New("database unavailable"))

	_, err := svc.CategoryReport(context.Background(), testPhone)

	assert.Error(t, err)
	renderer.AssertNotCalled(t, "Render")
}

func TestCategoryReport_RendererError(t *testing.T) {
	svc, transactions, renderer := newTestReportService(t)
	transactions.On("CategoryTotals", mock.Anything, testPhone).
		Return([]storage.CategoryTotal{
			{Category: "food", Total: decimal.RequireFromString("-10")},
		}, nil)
	renderer.On("Render", testPhone, mock.Anything).
		Return("", errors.New("render chart: disk full"))

	_, err := svc.CategoryReport(context.Background(), testPhone)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
