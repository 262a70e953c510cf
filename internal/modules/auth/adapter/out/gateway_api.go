package out

import (
	"context"

	"ledgerdesk/internal/modules/auth/dto"
	authout "ledgerdesk/internal/modules/auth/port/out"
	"ledgerdesk/internal/modules/gateway/domain"
	gatewayin "ledgerdesk/internal/modules/gateway/port/in"
)

const (
	registerPath = "/auth/register"
	loginPath    = "/auth/login"
	logoutPath   = "/auth/logout"
)

type GatewayAPI struct {
	gateway gatewayin.Requester
}

func NewGatewayAPI(gateway gatewayin.Requester) authout.API {
	return &GatewayAPI{gateway: gateway}
}

func (a *GatewayAPI) Register(ctx context.Context, input dto.RegisterInput) (dto.AuthOutput, error) {
	raw, err := a.gateway.Do(ctx, domain.MethodPost, registerPath, input)
	if err != nil {
		return dto.AuthOutput{}, err
	}
	return domain.Decode[dto.AuthOutput](raw)
}

func (a *GatewayAPI) Login(ctx context.Context, input dto.LoginInput) (dto.AuthOutput, error) {
	raw, err := a.gateway.Do(ctx, domain.MethodPost, loginPath, input)
	if err != nil {
		return dto.AuthOutput{}, err
	}
	return domain.Decode[dto.AuthOutput](raw)
}

func (a *GatewayAPI) Logout(ctx context.Context) error {
	_, err := a.gateway.Do(ctx, domain.MethodPost, logoutPath, nil)
	return err
}
