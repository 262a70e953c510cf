package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"ledgerdesk/internal/modules/dashboard/domain"
	dashboardout "ledgerdesk/internal/modules/dashboard/port/out"
)

type DashboardService struct {
	invoices  dashboardout.RecordSource
	purchases dashboardout.RecordSource
	logger    zerolog.Logger
}

func NewDashboardService(invoices, purchases dashboardout.RecordSource, logger zerolog.Logger) *DashboardService {
	return &DashboardService{
		invoices:  invoices,
		purchases: purchases,
		logger:    logger.With().Str("component", "dashboard").Logger(),
	}
}

// Overview fetches both lists at once. Either half may fail on its own.
func (s *DashboardService) Overview(ctx context.Context) domain.Overview {
	var (
		wg        sync.WaitGroup
		overview  domain.Overview
		invoices  []domain.Record
		purchases []domain.Record
		invErr    error
		purErr    error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		invoices, invErr = s.invoices.ListRecords(ctx)
	}()
	go func() {
		defer wg.Done()
		purchases, purErr = s.purchases.ListRecords(ctx)
	}()
	wg.Wait()

	overview.Invoices = domain.Summarize(domain.KindInvoice, invoices, invErr)
	overview.Purchases = domain.Summarize(domain.KindPurchase, purchases, purErr)
	if invErr != nil {
		s.logger.Warn().Err(invErr).Msg("load invoices")
	}
	if purErr != nil {
		s.logger.Warn().Err(purErr).Msg("load purchases")
	}
	return overview
}
