package in

import (
	"context"

	"ledgerdesk/internal/modules/purchase/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.PurchaseOutput, error)
	Get(ctx context.Context, id string) (dto.PurchaseOutput, error)
	Create(ctx context.Context, input dto.DraftInput) (dto.PurchaseOutput, error)
	Update(ctx context.Context, id string, input dto.DraftInput) (dto.PurchaseOutput, error)
	Delete(ctx context.Context, id string) error
	Statuses() []string
}
