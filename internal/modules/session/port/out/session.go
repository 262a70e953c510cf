package out

import (
	"context"

	"ledgerdesk/internal/modules/session/domain"
)

// Storage is a durable string key-value store. SetMany and Remove apply all
// keys or none.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	SetMany(ctx context.Context, values map[string]string) error
	Remove(ctx context.Context, keys ...string) error
	Close() error
}

type AuthGateway interface {
	Login(ctx context.Context, email, password string) (domain.Session, error)
	Register(ctx context.Context, email, password, role string) (domain.Session, error)
	Logout(ctx context.Context) error
}
