package in

import (
	"context"

	"ledgerdesk/internal/modules/invoice/dto"
	invoicein "ledgerdesk/internal/modules/invoice/port/in"
)

type CLIHandler struct {
	usecase invoicein.Usecase
}

func NewCLIHandler(usecase invoicein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.InvoiceOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Show(ctx context.Context, id string) (dto.InvoiceOutput, error) {
	return h.usecase.Get(ctx, id)
}

func (h CLIHandler) Create(ctx context.Context, title, amount, date, status, description string) (dto.InvoiceOutput, error) {
	return h.usecase.Create(ctx, dto.DraftInput{Title: title, Amount: amount, Date: date, Status: status, Description: description})
}

// Update starts from the stored invoice so flags left unset keep their value.
func (h CLIHandler) Update(ctx context.Context, id string, patch func(*dto.DraftInput)) (dto.InvoiceOutput, error) {
	current, err := h.usecase.Get(ctx, id)
	if err != nil {
		return dto.InvoiceOutput{}, err
	}
	input := current.Draft
	patch(&input)
	return h.usecase.Update(ctx, id, input)
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.Delete(ctx, id)
}
