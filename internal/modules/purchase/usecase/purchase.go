package usecase

import (
	"context"

	"ledgerdesk/internal/modules/purchase/domain"
	"ledgerdesk/internal/modules/purchase/dto"
	purchasein "ledgerdesk/internal/modules/purchase/port/in"
	"ledgerdesk/internal/modules/purchase/service"
)

type Interactor struct {
	svc *service.PurchaseService
}

func NewInteractor(svc *service.PurchaseService) purchasein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context) ([]dto.PurchaseOutput, error) {
	purchases, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseOutput, 0, len(purchases))
	for _, purchase := range purchases {
		out = append(out, toOutput(purchase))
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, id string) (dto.PurchaseOutput, error) {
	purchase, err := i.svc.Get(ctx, id)
	if err != nil {
		return dto.PurchaseOutput{}, err
	}
	return toOutput(purchase), nil
}

func (i *Interactor) Create(ctx context.Context, input dto.DraftInput) (dto.PurchaseOutput, error) {
	purchase, err := i.svc.Create(ctx, toDraft(input))
	if err != nil {
		return dto.PurchaseOutput{}, err
	}
	return toOutput(purchase), nil
}

func (i *Interactor) Update(ctx context.Context, id string, input dto.DraftInput) (dto.PurchaseOutput, error) {
	purchase, err := i.svc.Update(ctx, id, toDraft(input))
	if err != nil {
		return dto.PurchaseOutput{}, err
	}
	return toOutput(purchase), nil
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
		Name:   input.Name,
		Vendor: input.Vendor,
		Amount: input.Amount,
		Date:   input.Date,
		Status: input.Status,
	}
}

func toOutput(purchase domain.Purchase) dto.PurchaseOutput {
	draft := purchase.Draft()
	return dto.PurchaseOutput{
		ID:      purchase.ID.String(),
		Name:    purchase.Name,
		Vendor:  purchase.Vendor,
		Amount:  float64(purchase.Amount),
		Date:    purchase.Date,
		Status:  string(purchase.Status),
		OwnerID: purchase.OwnerID.String(),
		Draft: dto.DraftInput{
			Name:   draft.Name,
			Vendor: draft.Vendor,
			Amount: draft.Amount,
			Date:   draft.Date,
			Status: draft.Status,
		},
	}
}
