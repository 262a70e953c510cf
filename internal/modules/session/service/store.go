package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	gatewaydomain "ledgerdesk/internal/modules/gateway/domain"
	"ledgerdesk/internal/modules/session/domain"
	sessionout "ledgerdesk/internal/modules/session/port/out"
	apperrors "ledgerdesk/internal/platform/errors"
)

// Store owns the current session. It starts in the loading state until
// Restore has read durable storage.
type Store struct {
	auth    sessionout.AuthGateway
	storage sessionout.Storage
	logger  zerolog.Logger

	// ops serializes Login, Signup and Logout. mu is never held across a
	// network call because the gateway reads the token through it.
	ops sync.Mutex

	mu      sync.RWMutex
	session domain.Session
	loading bool
	lastErr string
}

func NewStore(auth sessionout.AuthGateway, storage sessionout.Storage, logger zerolog.Logger) *Store {
	return &Store{
		auth:    auth,
		storage: storage,
		logger:  logger.With().Str("component", "session").Logger(),
		loading: true,
	}
}

func (s *Store) Restore(ctx context.Context) {
	restored := s.load(ctx)
	s.mu.Lock()
	s.session = restored
	s.loading = false
	s.mu.Unlock()
	if restored.Authenticated() {
		s.logger.Debug().Str("email", restored.User.Email).Msg("session restored")
	}
}

func (s *Store) load(ctx context.Context) domain.Session {
	rawUser, hasUser, err := s.storage.Get(ctx, domain.KeyUser)
	if err != nil {
		s.logger.Warn().Err(err).Msg("read stored user")
		return domain.Session{}
	}
	token, hasToken, err := s.storage.Get(ctx, domain.KeyAccessToken)
	if err != nil {
		s.logger.Warn().Err(err).Msg("read stored access token")
		return domain.Session{}
	}
	if !hasUser || !hasToken || rawUser == "" || token == "" {
		return domain.Session{}
	}
	user := domain.User{}
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		s.logger.Warn().Err(err).Msg("discarding corrupt stored user")
		return domain.Session{}
	}
	refresh, _, err := s.storage.Get(ctx, domain.KeyRefreshToken)
	if err != nil {
		s.logger.Warn().Err(err).Msg("read stored refresh token")
	}
	return domain.Session{User: &user, AccessToken: token, RefreshToken: refresh}
}

func (s *Store) Login(ctx context.Context, email, password string) error {
	s.ops.Lock()
	defer s.ops.Unlock()

	if err := domain.ValidateLogin(email, password); err != nil {
		s.setError(err.Error())
		return err
	}
	s.setError("")
	session, err := s.auth.Login(ctx, email, password)
	if err == nil {
		err = s.establish(ctx, session)
	}
	if err != nil {
		s.fail("login", email, domain.MsgLoginFailed, err)
		return err
	}
	s.logger.Info().Str("email", email).Str("role", session.User.Role).Msg("logged in")
	return nil
}

func (s *Store) Signup(ctx context.Context, email, password, confirm, role string) error {
	s.ops.Lock()
	defer s.ops.Unlock()

	if err := domain.ValidateSignup(email, password, confirm); err != nil {
		s.setError(err.Error())
		return err
	}
	if role == "" {
		role = domain.RoleUser
	}
	s.setError("")
	session, err := s.auth.Register(ctx, email, password, role)
	if err == nil {
		err = s.establish(ctx, session)
	}
	if err != nil {
		s.fail("signup", email, domain.MsgSignupFailed, err)
		return err
	}
	s.logger.Info().Str("email", email).Str("role", session.User.Role).Msg("signed up")
	return nil
}

// Logout always clears the local session. The remote call is best effort;
// the returned error only reports a storage failure.
func (s *Store) Logout(ctx context.Context) error {
	s.ops.Lock()
	defer s.ops.Unlock()

	if err := s.auth.Logout(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("remote logout failed")
	}
	err := s.storage.Remove(ctx, domain.StorageKeys()...)
	s.mu.Lock()
	s.session = domain.Session{}
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("clear stored session: %w", err)
	}
	return nil
}

func (s *Store) establish(ctx context.Context, session domain.Session) error {
	if !session.Authenticated() {
		return &gatewaydomain.TransportError{Op: "invalid auth response", Err: apperrors.ErrInvalidResponse}
	}
	encoded, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	values := map[string]string{
		domain.KeyUser:         string(encoded),
		domain.KeyAccessToken:  session.AccessToken,
		domain.KeyRefreshToken: session.RefreshToken,
	}
	if err := s.storage.SetMany(ctx, values); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	user := *session.User
	s.mu.Lock()
	s.session = domain.Session{User: &user, AccessToken: session.AccessToken, RefreshToken: session.RefreshToken}
	s.lastErr = ""
	s.mu.Unlock()
	return nil
}

func (s *Store) fail(op, email, fallback string, err error) {
	// Server messages are shown verbatim; transport failures are not.
	message := err.Error()
	var transportErr *gatewaydomain.TransportError
	if message == "" || errors.As(err, &transportErr) {
		message = fallback
	}
	s.setError(message)
	s.logger.Info().Str("email", email).Err(err).Msg(op + " failed")
}

func (s *Store) setError(message string) {
	s.mu.Lock()
	s.lastErr = message
	s.mu.Unlock()
}

func (s *Store) CurrentUser() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.session.Authenticated() {
		return domain.User{}, false
	}
	return *s.session.User, true
}

func (s *Store) AccessToken() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.AccessToken, s.session.AccessToken != ""
}

func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Store) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *Store) ClearError() {
	s.setError("")
}
