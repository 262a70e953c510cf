package out

import (
	"context"

	authdto "ledgerdesk/internal/modules/auth/dto"
	authin "ledgerdesk/internal/modules/auth/port/in"
	"ledgerdesk/internal/modules/session/domain"
	sessionout "ledgerdesk/internal/modules/session/port/out"
)

type AuthGatewayAdapter struct {
	auth authin.Usecase
}

func NewAuthGatewayAdapter(auth authin.Usecase) sessionout.AuthGateway {
	return &AuthGatewayAdapter{auth: auth}
}

func (a *AuthGatewayAdapter) Login(ctx context.Context, email, password string) (domain.Session, error) {
	out, err := a.auth.Login(ctx, authdto.LoginInput{Email: email, Password: password})
	if err != nil {
		return domain.Session{}, err
	}
	return toSession(out), nil
}

func (a *AuthGatewayAdapter) Register(ctx context.Context, email, password, role string) (domain.Session, error) {
	out, err := a.auth.Register(ctx, authdto.RegisterInput{Email: email, Password: password, Role: role})
	if err != nil {
		return domain.Session{}, err
	}
	return toSession(out), nil
}

func (a *AuthGatewayAdapter) Logout(ctx context.Context) error {
	return a.auth.Logout(ctx)
}

func toSession(out authdto.AuthOutput) domain.Session {
	session := domain.Session{AccessToken: out.Tokens.Access, RefreshToken: out.Tokens.Refresh}
	if out.User != nil {
		session.User = &domain.User{ID: out.User.ID, Email: out.User.Email, Role: out.User.Role}
	}
	return session
}
