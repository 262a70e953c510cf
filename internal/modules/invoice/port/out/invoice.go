package out

import (
	"context"

	"ledgerdesk/internal/modules/invoice/domain"
	"ledgerdesk/internal/platform/id"
)

type API interface {
	List(ctx context.Context) ([]domain.Invoice, error)
	Get(ctx context.Context, invoiceID id.ID) (domain.Invoice, error)
	Create(ctx context.Context, invoice domain.Invoice) (domain.Invoice, error)
	Update(ctx context.Context, invoiceID id.ID, invoice domain.Invoice) (domain.Invoice, error)
	Delete(ctx context.Context, invoiceID id.ID) error
}

// Identity yields the id of the signed-in user.
type Identity interface {
	CurrentUserID(ctx context.Context) (id.ID, error)
}
