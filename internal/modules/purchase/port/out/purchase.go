package out

import (
	"context"

	"ledgerdesk/internal/modules/purchase/domain"
	"ledgerdesk/internal/platform/id"
)

type API interface {
	List(ctx context.Context) ([]domain.Purchase, error)
	Get(ctx context.Context, purchaseID id.ID) (domain.Purchase, error)
	Create(ctx context.Context, purchase domain.Purchase) (domain.Purchase, error)
	Update(ctx context.Context, purchaseID id.ID, purchase domain.Purchase) (domain.Purchase, error)
	Delete(ctx context.Context, purchaseID id.ID) error
}

// Identity yields the id of the signed-in user.
type Identity interface {
	CurrentUserID(ctx context.Context) (id.ID, error)
}
