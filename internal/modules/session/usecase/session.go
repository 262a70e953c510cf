package usecase

import (
	"context"

	"ledgerdesk/internal/modules/session/domain"
	sessiondto "ledgerdesk/internal/modules/session/dto"
	sessionin "ledgerdesk/internal/modules/session/port/in"
	"ledgerdesk/internal/modules/session/service"
	apperrors "ledgerdesk/internal/platform/errors"
)

type Interactor struct {
	store *service.Store
}

func NewInteractor(store *service.Store) sessionin.Usecase {
	return &Interactor{store: store}
}

func (i *Interactor) Restore(ctx context.Context) {
	i.store.Restore(ctx)
}

func (i *Interactor) Login(ctx context.Context, input sessiondto.LoginInput) (sessiondto.UserOutput, error) {
	if err := i.store.Login(ctx, input.Email, input.Password); err != nil {
		return sessiondto.UserOutput{}, i.shown(err)
	}
	return i.CurrentUser(ctx)
}

func (i *Interactor) Signup(ctx context.Context, input sessiondto.SignupInput) (sessiondto.UserOutput, error) {
	if err := i.store.Signup(ctx, input.Email, input.Password, input.Confirm, input.Role); err != nil {
		return sessiondto.UserOutput{}, i.shown(err)
	}
	return i.CurrentUser(ctx)
}

func (i *Interactor) Logout(ctx context.Context) error {
	return i.store.Logout(ctx)
}

func (i *Interactor) CurrentUser(_ context.Context) (sessiondto.UserOutput, error) {
	user, ok := i.store.CurrentUser()
	if !ok {
		return sessiondto.UserOutput{}, apperrors.ErrUnauthenticated
	}
	return toUserOutput(user), nil
}

func (i *Interactor) Whoami(ctx context.Context) (sessiondto.WhoamiOutput, error) {
	user, err := i.CurrentUser(ctx)
	if err != nil {
		return sessiondto.WhoamiOutput{}, err
	}
	out := sessiondto.WhoamiOutput{User: user}
	if token, ok := i.store.AccessToken(); ok {
		out.ExpiresAt, out.HasExpiry = domain.TokenExpiry(token)
	}
	return out, nil
}

func (i *Interactor) State(_ context.Context) sessiondto.StateOutput {
	state := sessiondto.StateOutput{
		Loading:   i.store.IsLoading(),
		LastError: i.store.LastError(),
	}
	if user, ok := i.store.CurrentUser(); ok {
		state.User = toUserOutput(user)
		state.LoggedIn = true
	}
	return state
}

func (i *Interactor) ClearError(_ context.Context) {
	i.store.ClearError()
}

func (i *Interactor) Route(_ context.Context, path string) sessiondto.RouteDecision {
	_, authenticated := i.store.CurrentUser()
	target, redirect := domain.Guard(path, i.store.IsLoading(), authenticated)
	if !redirect {
		return sessiondto.RouteDecision{Path: path}
	}
	return sessiondto.RouteDecision{Path: target, Redirect: true}
}

func toUserOutput(user domain.User) sessiondto.UserOutput {
	return sessiondto.UserOutput{
		ID:         user.ID,
		Email:      user.Email,
		Role:       user.Role,
		Privileged: user.Privileged(),
	}
}

// shownError carries the message the store chose for the user while keeping
// the cause reachable through errors.Is and errors.As.
type shownError struct {
	message string
	err     error
}

func (e *shownError) Error() string { return e.message }

func (e *shownError) Unwrap() error { return e.err }

func (i *Interactor) shown(err error) error {
	message := i.store.LastError()
	if message == "" || message == err.Error() {
		return err
	}
	return &shownError{message: message, err: err}
}
