package service_test

import (
	"context"
	"errors"
	"testing"

	"ledgerdesk/internal/modules/invoice/domain"
	"ledgerdesk/internal/modules/invoice/service"
	"ledgerdesk/internal/platform/draft"
	apperrors "ledgerdesk/internal/platform/errors"
	"ledgerdesk/internal/platform/id"
)

type fakeAPI struct {
	created []domain.Invoice
	updated map[string]domain.Invoice
	deleted []string
}

func (f *fakeAPI) List(context.Context) ([]domain.Invoice, error) { return nil, nil }

func (f *fakeAPI) Get(_ context.Context, invoiceID id.ID) (domain.Invoice, error) {
	return domain.Invoice{ID: invoiceID}, nil
}

func (f *fakeAPI) Create(_ context.Context, invoice domain.Invoice) (domain.Invoice, error) {
	f.created = append(f.created, invoice)
	return invoice, nil
}

func (f *fakeAPI) Update(_ context.Context, invoiceID id.ID, invoice domain.Invoice) (domain.Invoice, error) {
	if f.updated == nil {
		f.updated = map[string]domain.Invoice{}
	}
	f.updated[invoiceID.String()] = invoice
	return invoice, nil
}

func (f *fakeAPI) Delete(_ context.Context, invoiceID id.ID) error {
	f.deleted = append(f.deleted, invoiceID.String())
	return nil
}

type fakeIdentity struct {
	id  id.ID
	err error
}

func (f fakeIdentity) CurrentUserID(context.Context) (id.ID, error) { return f.id, f.err }

func validDraft() domain.Draft {
	return domain.Draft{Title: "Rent", Amount: "1200.50", Date: "2024-01-01", Status: "Pending"}
}

func TestCreateStampsOwner(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{}
	svc := service.NewInvoiceService(api, fakeIdentity{id: id.FromInt(7)})
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
	svc := service.NewInvoiceService(api, fakeIdentity{err: apperrors.ErrUnauthenticated})
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
	svc := service.NewInvoiceService(api, fakeIdentity{id: id.FromInt(7)})
	_, err := svc.Update(context.Background(), "3", domain.Draft{Title: "Rent"})
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
	svc := service.NewInvoiceService(api, fakeIdentity{id: id.FromString("u-1")})
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
