package service_test

import (
	"context"
	"errors"
	"testing"

	"ledgerdesk/internal/modules/purchase/domain"
	"ledgerdesk/internal/modules/purchase/service"
	"ledgerdesk/internal/platform/draft"
	apperrors "ledgerdesk/internal/platform/errors"
	"ledgerdesk/internal/platform/id"
)

type fakeAPI struct {
	created []domain.Purchase
	updated map[string]domain.Purchase
	deleted []string
}

func (f *fakeAPI) List(context.Context) ([]domain.Purchase, error) { return nil, nil }

func (f *fakeAPI) Get(_ context.Context, purchaseID id.ID) (domain.Purchase, error) {
	return domain.Purchase{ID: purchaseID}, nil
}

func (f *fakeAPI) Create(_ context.Context, purchase domain.Purchase) (domain.Purchase, error) {
	f.created = append(f.created, purchase)
	return purchase, nil
}

func (f *fakeAPI) Update(_ context.Context, purchaseID id.ID, purchase domain.Purchase) (domain.Purchase, error) {
	if f.updated == nil {
		f.updated = map[string]domain.Purchase{}
	}
	f.updated[purchaseID.String()] = purchase
	return purchase, nil
}

func (f *fakeAPI) Delete(_ context.Context, purchaseID id.ID) error {
	f.deleted = append(f.deleted, purchaseID.String())
	return nil
}

type fakeIdentity struct {
	id  id.ID
	err error
}

func (f fakeIdentity) CurrentUserID(context.Context) (id.ID, error) { return f.id, f.err }

func validDraft() domain.Draft {
	return domain.Draft{Name: "Laptop", Vendor: "Acme", Amount: "999.99", Date: "2024-02-03", Status: "Completed"}
}

func TestCreateStampsOwner(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{}
	svc := service.NewPurchaseService(api, fakeIdentity{id: id.FromInt(7)})
	if _, err := svc.Create(context.Background(), validDraft()); err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(api.created) != 1 || api.created[0].OwnerID.String() != "7" {
		t.Fatalf("expected owner stamped, got %+v", api.created)
	}
}

func TestCreateWithoutUserSendsNothing(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{}
	svc := service.NewPurchaseService(api, fakeIdentity{err: apperrors.ErrUnauthenticated})
	_, err := svc.Create(context.Background(), validDraft())
	if !errors.Is(err, apperrors.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
	if len(api.created) != 0 {
		t.Fatalf("no request expected")
	}
}

func TestInvalidDraftSendsNothing(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{}
	svc := service.NewPurchaseService(api, fakeIdentity{id: id.FromInt(7)})
	_, err := svc.Update(context.Background(), "3", domain.Draft{Name: "Laptop", Amount: "1", Date: "2024-02-03"})
	if err == nil || err.Error() != draft.MsgMissingRequired {
		t.Fatalf("expected missing fields, got %v", err)
	}
	if len(api.updated) != 0 {
		t.Fatalf("no request expected")
	}
}

func TestUpdateAndDeleteRequireID(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{}
	svc := service.NewPurchaseService(api, fakeIdentity{id: id.FromString("u-1")})
	if _, err := svc.Update(context.Background(), " ", validDraft()); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if err := svc.Delete(context.Background(), ""); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := svc.Update(context.Background(), "3", validDraft()); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := api.updated["3"].OwnerID.String(); got != "u-1" {
		t.Fatalf("expected owner u-1, got %q", got)
	}
	if err := svc.Delete(context.Background(), "3"); err != nil || len(api.deleted) != 1 {
		t.Fatalf("delete: %v %v", err, api.deleted)
	}
}
