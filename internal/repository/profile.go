package repository

import (
	"context"

	"github.com/worklink-app/worklink/internal/domain"
)

type ProfileRepository interface {
	Insert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)

	// FindByID returns domain.ErrProfileNotFound when the id does not
	// resolve.
	FindByID(ctx context.Context, id string) (*domain.Profile, error)
}
