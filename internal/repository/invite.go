package repository

import (
	"context"

	"github.com/worklink-app/worklink/internal/domain"
)

type InviteRepository interface {
	Insert(ctx context.Context, invite *domain.Invite) error

	// Claim atomically finds an unused, unexpired invite by token hash and
	// marks it used in the same statement. At most one of any number of
	// concurrent claims for the same token succeeds; the rest get
	// domain.ErrInviteInvalid.
	Claim(ctx context.Context, tokenHash string) (*domain.Invite, error)
}
