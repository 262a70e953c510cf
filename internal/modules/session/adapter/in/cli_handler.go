package in

import (
	"context"

	sessiondto "ledgerdesk/internal/modules/session/dto"
	sessionin "ledgerdesk/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Login(ctx context.Context, email, password string) (sessiondto.UserOutput, error) {
	return h.usecase.Login(ctx, sessiondto.LoginInput{Email: email, Password: password})
}

func (h CLIHandler) Signup(ctx context.Context, email, password, confirm, role string) (sessiondto.UserOutput, error) {
	return h.usecase.Signup(ctx, sessiondto.SignupInput{Email: email, Password: password, Confirm: confirm, Role: role})
}

func (h CLIHandler) Logout(ctx context.Context) error {
	return h.usecase.Logout(ctx)
}

func (h CLIHandler) Whoami(ctx context.Context) (sessiondto.WhoamiOutput, error) {
	return h.usecase.Whoami(ctx)
}

// RequireUser fails with the unauthenticated error for commands behind the
// route guard.
func (h CLIHandler) RequireUser(ctx context.Context) (sessiondto.UserOutput, error) {
	return h.usecase.CurrentUser(ctx)
}
