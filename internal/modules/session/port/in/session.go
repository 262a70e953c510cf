package in

import (
	"context"

	"ledgerdesk/internal/modules/session/dto"
)

type Usecase interface {
	Restore(ctx context.Context)
	Login(ctx context.Context, input dto.LoginInput) (dto.UserOutput, error)
	Signup(ctx context.Context, input dto.SignupInput) (dto.UserOutput, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (dto.UserOutput, error)
	Whoami(ctx context.Context) (dto.WhoamiOutput, error)
	State(ctx context.Context) dto.StateOutput
	ClearError(ctx context.Context)
	// Route resolves where a navigation to path should land.
	Route(ctx context.Context, path string) dto.RouteDecision
}
