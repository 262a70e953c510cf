package out

import (
	"context"
	"net/url"

	gatewaydomain "ledgerdesk/internal/modules/gateway/domain"
	gatewayin "ledgerdesk/internal/modules/gateway/port/in"
	"ledgerdesk/internal/modules/purchase/domain"
	purchaseout "ledgerdesk/internal/modules/purchase/port/out"
	apperrors "ledgerdesk/internal/platform/errors"
	"ledgerdesk/internal/platform/id"
)

const purchasesPath = "/purchases"

type GatewayAPI struct {
	gateway gatewayin.Requester
}

func NewGatewayAPI(gateway gatewayin.Requester) purchaseout.API {
	return &GatewayAPI{gateway: gateway}
}

func (a *GatewayAPI) List(ctx context.Context) ([]domain.Purchase, error) {
	raw, err := a.gateway.Do(ctx, gatewaydomain.MethodGet, purchasesPath, nil)
	if err != nil {
		return nil, err
	}
	return gatewaydomain.DecodeList[domain.Purchase](raw)
}

func (a *GatewayAPI) Get(ctx context.Context, purchaseID id.ID) (domain.Purchase, error) {
	raw, err := a.gateway.Do(ctx, gatewaydomain.MethodGet, recordPath(purchaseID), nil)
	if err != nil {
		return domain.Purchase{}, err
	}
	purchase, ok, err := gatewaydomain.DecodeRecord[domain.Purchase](raw)
	if err != nil {
		return domain.Purchase{}, err
	}
	if !ok {
		return domain.Purchase{}, &gatewaydomain.TransportError{Op: "decode purchase", Err: apperrors.ErrInvalidResponse}
	}
	return purchase, nil
}

func (a *GatewayAPI) Create(ctx context.Context, purchase domain.Purchase) (domain.Purchase, error) {
	raw, err := a.gateway.Do(ctx, gatewaydomain.MethodPost, purchasesPath, purchase)
	if err != nil {
		return domain.Purchase{}, err
	}
	return echoed(raw, purchase)
}

func (a *GatewayAPI) Update(ctx context.Context, purchaseID id.ID, purchase domain.Purchase) (domain.Purchase, error) {
	raw, err := a.gateway.Do(ctx, gatewaydomain.MethodPut, recordPath(purchaseID), purchase)
	if err != nil {
		return domain.Purchase{}, err
	}
	purchase.ID = purchaseID
	return echoed(raw, purchase)
}

func (a *GatewayAPI) Delete(ctx context.Context, purchaseID id.ID) error {
	_, err := a.gateway.Do(ctx, gatewaydomain.MethodDelete, recordPath(purchaseID), nil)
	return err
}

// echoed returns the record the server answered with, or the one sent when
// the answer had no body.
func echoed(raw []byte, sent domain.Purchase) (domain.Purchase, error) {
	purchase, ok, err := gatewaydomain.DecodeRecord[domain.Purchase](raw)
	if err != nil {
		return domain.Purchase{}, err
	}
	if !ok {
		return sent, nil
	}
	return purchase, nil
}

func recordPath(purchaseID id.ID) string {
	return purchasesPath + "/" + url.PathEscape(purchaseID.String())
}
