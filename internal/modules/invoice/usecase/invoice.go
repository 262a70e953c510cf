package usecase

import (
	"context"

	"ledgerdesk/internal/modules/invoice/domain"
	"ledgerdesk/internal/modules/invoice/dto"
	invoicein "ledgerdesk/internal/modules/invoice/port/in"
	"ledgerdesk/internal/modules/invoice/service"
)

type Interactor struct {
	svc *service.InvoiceService
}

func NewInteractor(svc *service.InvoiceService) invoicein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context) ([]dto.InvoiceOutput, error) {
	invoices, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceOutput, 0, len(invoices))
	for _, invoice := range invoices {
		out = append(out, toOutput(invoice))
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, id string) (dto.InvoiceOutput, error) {
	invoice, err := i.svc.Get(ctx, id)
	if err != nil {
		return dto.InvoiceOutput{}, err
	}
	return toOutput(invoice), nil
}

func (i *Interactor) Create(ctx context.Context, input dto.DraftInput) (dto.InvoiceOutput, error) {
	invoice, err := i.svc.Create(ctx, toDraft(input))
	if err != nil {
		return dto.InvoiceOutput{}, err
	}
	return toOutput(invoice), nil
}

func (i *Interactor) Update(ctx context.Context, id string, input dto.DraftInput) (dto.InvoiceOutput, error) {
	invoice, err := i.svc.Update(ctx, id, toDraft(input))
	if err != nil {
		return dto.InvoiceOutput{}, err
	}
	return toOutput(invoice), nil
}

func (i *Interactor) Delete(ctx context.Context, id string) error {
	return i.svc.Delete(ctx, id)
}

func (i *Interactor) Statuses() []string {
	statuses := domain.Statuses()
	out := make([]string, 0, len(statuses))
	for _, status := range statuses {
		out = append(out, string(status))
	}
	return out
}

func toDraft(input dto.DraftInput) domain.Draft {
	return domain.Draft{
		Title:       input.Title,
		Amount:      input.Amount,
		Date:        input.Date,
		Status:      input.Status,
		Description: input.Description,
	}
}

func toOutput(invoice domain.Invoice) dto.InvoiceOutput {
	draft := invoice.Draft()
	return dto.InvoiceOutput{
		ID:          invoice.ID.String(),
		Title:       invoice.Title,
		Amount:      float64(invoice.Amount),
		Date:        invoice.Date,
		Status:      string(invoice.Status),
		Description: invoice.Description,
		OwnerID:     invoice.OwnerID.String(),
		Draft: dto.DraftInput{
			Title:       draft.Title,
			Amount:      draft.Amount,
			Date:        draft.Date,
			Status:      draft.Status,
			Description: draft.Description,
		},
	}
}
