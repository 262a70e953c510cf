package out

import (
	"context"

	"ledgerdesk/internal/modules/auth/dto"
)

type API interface {
	Register(ctx context.Context, input dto.RegisterInput) (dto.AuthOutput, error)
	Login(ctx context.Context, input dto.LoginInput) (dto.AuthOutput, error)
	Logout(ctx context.Context) error
}
