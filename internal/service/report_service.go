package service

import (
	"context"
	"errors"

	"github.com/tally-networks/finance-bot/internal/report"
	"github.com/tally-networks/finance-bot/internal/storage"
)

// ErrNoTransactions is returned when a report is requested for a user with
// nothing in the ledger.
var ErrNoTransactions = errors.New("no transactions recorded")

// Renderer turns category totals into a chart artifact and returns its path.
type Renderer interface {
	Render(name string, slices []report.Slice) (string, error)
}

// ReportService aggregates a user's transactions and renders the chart.
type ReportService struct {
	storage  *storage.Storage
	renderer Renderer
}

// NewReportService creates a new ReportService.
func NewReportService(store *storage.Storage, renderer Renderer) *ReportService {
	return &ReportService{storage: store, renderer: renderer}
}

// CategoryReport renders the user's per-category spending chart and returns
// the artifact path. The store is only read.
func (s *ReportService) CategoryReport(ctx context.Context, userPhone string) (string, error) {
	totals, err := s.storage.Transactions.CategoryTotals(ctx, userPhone)
	if err != nil {
		return "", err
	}
	if len(totals) == 0 {
		return "", ErrNoTransactions
	}

	slices := make([]report.Slice, len(totals))
	for i, total := range totals {
		slices[i] = report.Slice{
			Label: total.Category,
			Value: total.Total,
		}
	}

	return s.renderer.Render(userPhone, slices)
}
