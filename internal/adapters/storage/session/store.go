package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no session matches the token.
var ErrNotFound = errors.New("session not found")

// Session is an authenticated login, addressed by its opaque token.
type Session struct {
	Token     string
	AccountID string
	Email     string
	Role      string
	CreatedAt time.Time
}

// Store persists Session state across restarts.
type Store interface {
	Create(ctx context.Context, value Session) error
	Get(ctx context.Context, token string) (Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, before time.Time) error
}
