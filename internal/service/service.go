package service

import (
	"github.com/tally-networks/finance-bot/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Finance *FinanceService
	Report  *ReportService
}

// NewService creates a new Service with the given storage and chart renderer.
func NewService(store *storage.Storage, renderer Renderer) *Service {
	return &Service{
		Finance: NewFinanceService(store),
		Report:  NewReportService(store, renderer),
	}
}
