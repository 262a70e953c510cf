package service

import (
	"context"
	"strings"

	"ledgerdesk/internal/modules/invoice/domain"
	invoiceout "ledgerdesk/internal/modules/invoice/port/out"
	apperrors "ledgerdesk/internal/platform/errors"
	"ledgerdesk/internal/platform/id"
)

const msgMissingID = "invoice id is required"

type InvoiceService struct {
	api      invoiceout.API
	identity invoiceout.Identity
}

func NewInvoiceService(api invoiceout.API, identity invoiceout.Identity) *InvoiceService {
	return &InvoiceService{api: api, identity: identity}
}

func (s *InvoiceService) List(ctx context.Context) ([]domain.Invoice, error) {
	return s.api.List(ctx)
}

func (s *InvoiceService) Get(ctx context.Context, rawID string) (domain.Invoice, error) {
	invoiceID, err := parseID(rawID)
	if err != nil {
		return domain.Invoice{}, err
	}
	return s.api.Get(ctx, invoiceID)
}

// Create validates the draft, stamps the signed-in user as owner and sends
// it. Nothing is sent when either step fails.
func (s *InvoiceService) Create(ctx context.Context, draft domain.Draft) (domain.Invoice, error) {
	invoice, err := s.prepare(ctx, draft)
	if err != nil {
		return domain.Invoice{}, err
	}
	return s.api.Create(ctx, invoice)
}

func (s *InvoiceService) Update(ctx context.Context, rawID string, draft domain.Draft) (domain.Invoice, error) {
	invoiceID, err := parseID(rawID)
	if err != nil {
		return domain.Invoice{}, err
	}
	invoice, err := s.prepare(ctx, draft)
	if err != nil {
		return domain.Invoice{}, err
	}
	return s.api.Update(ctx, invoiceID, invoice)
}

func (s *InvoiceService) Delete(ctx context.Context, rawID string) error {
	invoiceID, err := parseID(rawID)
	if err != nil {
		return err
	}
	return s.api.Delete(ctx, invoiceID)
}

func (s *InvoiceService) prepare(ctx context.Context, draft domain.Draft) (domain.Invoice, error) {
	invoice, err := draft.Build()
	if err != nil {
		return domain.Invoice{}, err
	}
	owner, err := s.identity.CurrentUserID(ctx)
	if err != nil {
		return domain.Invoice{}, err
	}
	invoice.OwnerID = owner
	return invoice, nil
}

func parseID(raw string) (id.ID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return id.ID{}, apperrors.Validation(msgMissingID)
	}
	return id.Parse(raw), nil
}
