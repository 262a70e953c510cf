package in

import (
	"context"

	"ledgerdesk/internal/modules/invoice/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.InvoiceOutput, error)
	Get(ctx context.Context, id string) (dto.InvoiceOutput, error)
	Create(ctx context.Context, input dto.DraftInput) (dto.InvoiceOutput, error)
	Update(ctx context.Context, id string, input dto.DraftInput) (dto.InvoiceOutput, error)
	Delete(ctx context.Context, id string) error
	Statuses() []string
}
