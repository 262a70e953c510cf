package out

import (
	"context"

	"ledgerdesk/internal/modules/dashboard/domain"
	dashboardout "ledgerdesk/internal/modules/dashboard/port/out"
	invoicein "ledgerdesk/internal/modules/invoice/port/in"
	purchasein "ledgerdesk/internal/modules/purchase/port/in"
)

type InvoiceSource struct {
	invoices invoicein.Usecase
}

func NewInvoiceSource(invoices invoicein.Usecase) dashboardout.RecordSource {
	return &InvoiceSource{invoices: invoices}
}

func (s *InvoiceSource) ListRecords(ctx context.Context) ([]domain.Record, error) {
	invoices, err := s.invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]domain.Record, 0, len(invoices))
	for _, invoice := range invoices {
		records = append(records, domain.Record{
			ID:     invoice.ID,
			Label:  invoice.Title,
			Detail: invoice.Description,
			Amount: invoice.Amount,
			Date:   invoice.Draft.Date,
			Status: invoice.Status,
		})
	}
	return records, nil
}

type PurchaseSource struct {
	purchases purchasein.Usecase
}

func NewPurchaseSource(purchases purchasein.Usecase) dashboardout.RecordSource {
	return &PurchaseSource{purchases: purchases}
}

func (s *PurchaseSource) ListRecords(ctx context.Context) ([]domain.Record, error) {
	purchases, err := s.purchases.List(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]domain.Record, 0, len(purchases))
	for _, purchase := range purchases {
		records = append(records, domain.Record{
			ID:     purchase.ID,
			Label:  purchase.Name,
			Detail: purchase.Vendor,
			Amount: purchase.Amount,
			Date:   purchase.Draft.Date,
			Status: purchase.Status,
		})
	}
	return records, nil
}
