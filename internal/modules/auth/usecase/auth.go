package usecase

import (
	"context"
	"strings"

	"ledgerdesk/internal/modules/auth/dto"
	authin "ledgerdesk/internal/modules/auth/port/in"
	authout "ledgerdesk/internal/modules/auth/port/out"
)

const DefaultRole = "user"

type Interactor struct {
	api authout.API
}

func NewInteractor(api authout.API) authin.Usecase {
	return &Interactor{api: api}
}

func (i *Interactor) Register(ctx context.Context, input dto.RegisterInput) (dto.AuthOutput, error) {
	input.Email = strings.TrimSpace(input.Email)
	if strings.TrimSpace(input.Role) == "" {
		input.Role = DefaultRole
	}
	return i.api.Register(ctx, input)
}

func (i *Interactor) Login(ctx context.Context, input dto.LoginInput) (dto.AuthOutput, error) {
	input.Email = strings.TrimSpace(input.Email)
	return i.api.Login(ctx, input)
}

func (i *Interactor) Logout(ctx context.Context) error {
	return i.api.Logout(ctx)
}
