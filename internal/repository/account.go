package repository

import (
	"context"

	"github.com/worklink-app/worklink/internal/domain"
)

type AccountRepository interface {
	// Insert persists a new account. Returns domain.ErrEmailTaken when the
	// (lowercased) email is already registered.
	Insert(ctx context.Context, account *domain.Account) (*domain.Account, error)

	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)

	// LinkProfile sets the account's profile id, but only if none is linked
	// yet. Returns domain.ErrProfileLinked if the account already has one.
	LinkProfile(ctx context.Context, accountID, profileID string) error

	// UpdatePassword replaces the password hash and stamps
	// password_changed_at.
	UpdatePassword(ctx context.Context, accountID string, passwordHash []byte) error
}
