package in

import (
	"context"

	"ledgerdesk/internal/modules/purchase/dto"
	purchasein "ledgerdesk/internal/modules/purchase/port/in"
)

type CLIHandler struct {
	usecase purchasein.Usecase
}

func NewCLIHandler(usecase purchasein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.PurchaseOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Show(ctx context.Context, id string) (dto.PurchaseOutput, error) {
	return h.usecase.Get(ctx, id)
}

func (h CLIHandler) Create(ctx context.Context, name, vendor, amount, date, status string) (dto.PurchaseOutput, error) {
	return h.usecase.Create(ctx, dto.DraftInput{Name: name, Vendor: vendor, Amount: amount, Date: date, Status: status})
}

// Update starts from the stored purchase so flags left unset keep their value.
func (h CLIHandler) Update(ctx context.Context, id string, patch func(*dto.DraftInput)) (dto.PurchaseOutput, error) {
	current, err := h.usecase.Get(ctx, id)
	if err != nil {
		return dto.PurchaseOutput{}, err
	}
	input := current.Draft
	patch(&input)
	return h.usecase.Update(ctx, id, input)
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.Delete(ctx, id)
}
