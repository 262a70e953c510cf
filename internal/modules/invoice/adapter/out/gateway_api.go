package out

import (
	"context"
	"net/url"

	gatewaydomain "ledgerdesk/internal/modules/gateway/domain"
	gatewayin "ledgerdesk/internal/modules/gateway/port/in"
	"ledgerdesk/internal/modules/invoice/domain"
	invoiceout "ledgerdesk/internal/modules/invoice/port/out"
	apperrors "ledgerdesk/internal/platform/errors"
	"ledgerdesk/internal/platform/id"
)

const invoicesPath = "/invoices"

type GatewayAPI struct {
	gateway gatewayin.Requester
}

func NewGatewayAPI(gateway gatewayin.Requester) invoiceout.API {
	return &GatewayAPI{gateway: gateway}
}

func (a *GatewayAPI) List(ctx context.Context) ([]domain.Invoice, error) {
	raw, err := a.gateway.Do(ctx, gatewaydomain.MethodGet, invoicesPath, nil)
	if err != nil {
		return nil, err
	}
	return gatewaydomain.DecodeList[domain.Invoice](raw)
}

func (a *GatewayAPI) Get(ctx context.Context, invoiceID id.ID) (domain.Invoice, error) {
	raw, err := a.gateway.Do(ctx, gatewaydomain.MethodGet, recordPath(invoiceID), nil)
	if err != nil {
		return domain.Invoice{}, err
	}
	invoice, ok, err := gatewaydomain.DecodeRecord[domain.Invoice](raw)
	if err != nil {
		return domain.Invoice{}, err
	}
	if !ok {
		return domain.Invoice{}, &gatewaydomain.TransportError{Op: "decode invoice", Err: apperrors.ErrInvalidResponse}
	}
	return invoice, nil
}

func (a *GatewayAPI) Create(ctx context.Context, invoice domain.Invoice) (domain.Invoice, error) {
	raw, err := a.gateway.Do(ctx, gatewaydomain.MethodPost, invoicesPath, invoice)
	if err != nil {
		return domain.Invoice{}, err
	}
	return echoed(raw, invoice)
}

func (a *GatewayAPI) Update(ctx context.Context, invoiceID id.ID, invoice domain.Invoice) (domain.Invoice, error) {
	raw, err := a.gateway.Do(ctx, gatewaydomain.MethodPut, recordPath(invoiceID), invoice)
	if err != nil {
		return domain.Invoice{}, err
	}
	invoice.ID = invoiceID
	return echoed(raw, invoice)
}

func (a *GatewayAPI) Delete(ctx context.Context, invoiceID id.ID) error {
	_, err := a.gateway.Do(ctx, gatewaydomain.MethodDelete, recordPath(invoiceID), nil)
	return err
}

// echoed returns the record the server answered with, or the one sent when
// the answer had no body.
func echoed(raw []byte, sent domain.Invoice) (domain.Invoice, error) {
	invoice, ok, err := gatewaydomain.DecodeRecord[domain.Invoice](raw)
	if err != nil {
		return domain.Invoice{}, err
	}
	if !ok {
		return sent, nil
	}
	return invoice, nil
}

func recordPath(invoiceID id.ID) string {
	return invoicesPath + "/" + url.PathEscape(invoiceID.String())
}
