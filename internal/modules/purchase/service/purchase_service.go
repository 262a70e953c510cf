package service

import (
	"context"
	"strings"

	"ledgerdesk/internal/modules/purchase/domain"
	purchaseout "ledgerdesk/internal/modules/purchase/port/out"
	apperrors "ledgerdesk/internal/platform/errors"
	"ledgerdesk/internal/platform/id"
)

const msgMissingID = "purchase id is required"

type PurchaseService struct {
	api      purchaseout.API
	identity purchaseout.Identity
}

func NewPurchaseService(api purchaseout.API, identity purchaseout.Identity) *PurchaseService {
	return &PurchaseService{api: api, identity: identity}
}

func (s *PurchaseService) List(ctx context.Context) ([]domain.Purchase, error) {
	return s.api.List(ctx)
}

func (s *PurchaseService) Get(ctx context.Context, rawID string) (domain.Purchase, error) {
	purchaseID, err := parseID(rawID)
	if err != nil {
		return domain.Purchase{}, err
	}
	return s.api.Get(ctx, purchaseID)
}

func (s *PurchaseService) Create(ctx context.Context, draft domain.Draft) (domain.Purchase, error) {
	purchase, err := s.prepare(ctx, draft)
	if err != nil {
		return domain.Purchase{}, err
	}
	return s.api.Create(ctx, purchase)
}

func (s *PurchaseService) Update(ctx context.Context, rawID string, draft domain.Draft) (domain.Purchase, error) {
	purchaseID, err := parseID(rawID)
	if err != nil {
		return domain.Purchase{}, err
	}
	purchase, err := s.prepare(ctx, draft)
	if err != nil {
		return domain.Purchase{}, err
	}
	return s.api.Update(ctx, purchaseID, purchase)
}

func (s *PurchaseService) Delete(ctx context.Context, rawID string) error {
	purchaseID, err := parseID(rawID)
	if err != nil {
		return err
	}
	return s.api.Delete(ctx, purchaseID)
}

func (s *PurchaseService) prepare(ctx context.Context, draft domain.Draft) (domain.Purchase, error) {
	purchase, err := draft.Build()
	if err != nil {
		return domain.Purchase{}, err
	}
	owner, err := s.identity.CurrentUserID(ctx)
	if err != nil {
		return domain.Purchase{}, err
	}
	purchase.OwnerID = owner
	return purchase, nil
}

func parseID(raw string) (id.ID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return id.ID{}, apperrors.Validation(msgMissingID)
	}
	return id.Parse(raw), nil
}
