package repository

import (
	"context"

	"github.com/worklink-app/worklink/internal/domain"
)

type SessionRepository interface {
	Insert(ctx context.Context, session *domain.Session) error

	// FindByTokenHash looks a session up by the hash of the presented
	// token. Returns domain.ErrTokenInvalid when no record matches; the
	// age check against the configured duration happens in the usecase.
	FindByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error)

	// DeleteByTokenHash removes one session (logout). Deleting a session
	// that no longer exists is not an error.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteForAccount purges every session of an account, optionally
	// sparing one (the caller's current session). Returns the number of
	// sessions removed.
	DeleteForAccount(ctx context.Context, accountID string, keepTokenHash string) (int64, error)
}
