package app

import (
	"context"
	"fmt"

	invoicedto "ledgerdesk/internal/modules/invoice/dto"
	purchasedto "ledgerdesk/internal/modules/purchase/dto"
	"ledgerdesk/internal/ui/components"
	recordsview "ledgerdesk/internal/ui/views/records"
)

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows a record use case to the records view's Source, mapping
// form values to and from the module's draft input.

const datePlaceholder = "YYYY-MM-DD"

type invoiceSource struct{ p InvoicePort }

func (s invoiceSource) Name() string { return "Invoices" }

func (s invoiceSource) Fields() []components.Field {
	return []components.Field{
		{Key: "title", Label: "Title", Placeholder: "Website redesign"},
		{Key: "amount", Label: "Amount", Placeholder: "0.00"},
		{Key: "date", Label: "Date", Placeholder: datePlaceholder},
		{Key: "status", Label: "Status", Options: s.p.Statuses()},
		{Key: "description", Label: "Description"},
	}
}

func (s invoiceSource) List(ctx context.Context) ([]recordsview.Row, error) {
	items, err := s.p.List(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]recordsview.Row, len(items))
	for i, inv := range items {
		rows[i] = recordsview.Row{
			ID:     inv.ID,
			Title:  inv.Title,
			Detail: fmt.Sprintf("%.2f  %s", inv.Amount, inv.Draft.Date),
			Status: inv.Status,
			Values: map[string]string{
				"title":       inv.Draft.Title,
				"amount":      inv.Draft.Amount,
				"date":        inv.Draft.Date,
				"status":      inv.Draft.Status,
				"description": inv.Draft.Description,
			},
		}
	}
	return rows, nil
}

func (s invoiceSource) Create(ctx context.Context, values map[string]string) error {
	_, err := s.p.Create(ctx, invoiceDraft(values))
	return err
}

func (s invoiceSource) Update(ctx context.Context, id string, values map[string]string) error {
	_, err := s.p.Update(ctx, id, invoiceDraft(values))
	return err
}

func (s invoiceSource) Delete(ctx context.Context, id string) error {
	return s.p.Delete(ctx, id)
}

func invoiceDraft(values map[string]string) invoicedto.DraftInput {
	return invoicedto.DraftInput{
		Title:       values["title"],
		Amount:      values["amount"],
		Date:        values["date"],
		Status:      values["status"],
		Description: values["description"],
	}
}

type purchaseSource struct{ p PurchasePort }

func (s purchaseSource) Name() string { return "Purchases" }

func (s purchaseSource) Fields() []components.Field {
	return []components.Field{
		{Key: "name", Label: "Name", Placeholder: "Office chairs"},
		{Key: "vendor", Label: "Vendor"},
		{Key: "amount", Label: "Amount", Placeholder: "0.00"},
		{Key: "date", Label: "Date", Placeholder: datePlaceholder},
		{Key: "status", Label: "Status", Options: s.p.Statuses()},
	}
}

func (s purchaseSource) List(ctx context.Context) ([]recordsview.Row, error) {
	items, err := s.p.List(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]recordsview.Row, len(items))
	for i, p := range items {
		rows[i] = recordsview.Row{
			ID:     p.ID,
			Title:  p.Name,
			Detail: fmt.Sprintf("%s  %.2f  %s", p.Vendor, p.Amount, p.Draft.Date),
			Status: p.Status,
			Values: map[string]string{
				"name":   p.Draft.Name,
				"vendor": p.Draft.Vendor,
				"amount": p.Draft.Amount,
				"date":   p.Draft.Date,
				"status": p.Draft.Status,
			},
		}
	}
	return rows, nil
}

func (s purchaseSource) Create(ctx context.Context, values map[string]string) error {
	_, err := s.p.Create(ctx, purchaseDraft(values))
	return err
}

func (s purchaseSource) Update(ctx context.Context, id string, values map[string]string) error {
	_, err := s.p.Update(ctx, id, purchaseDraft(values))
	return err
}

func (s purchaseSource) Delete(ctx context.Context, id string) error {
	return s.p.Delete(ctx, id)
}

func purchaseDraft(values map[string]string) purchasedto.DraftInput {
	return purchasedto.DraftInput{
		Name:   values["name"],
		Vendor: values["vendor"],
		Amount: values["amount"],
		Date:   values["date"],
		Status: values["status"],
	}
}
