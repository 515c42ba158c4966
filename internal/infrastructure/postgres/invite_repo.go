package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/worklink-app/worklink/internal/domain"
)

type InviteRepository struct {
	pool *pgxpool.Pool
}

func NewInviteRepository(pool *pgxpool.Pool) *InviteRepository {
	return &InviteRepository{pool: pool}
}

func (r *InviteRepository) Insert(ctx context.Context, invite *domain.Invite) error {
	query := `
		INSERT INTO invites (token_hash, profile_id, role, expires_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, query,
		invite.TokenHash,
		invite.ProfileID,
		invite.Role,
		invite.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert invite: %w", err)
	}
	return nil
}

func (r *InviteRepository) Claim(ctx context.Context, tokenHash string) (*domain.Invite, error) {
	// Find-and-mark in one statement: the WHERE clause is the compare, the
	// SET is the swap, so two concurrent claims of the same token can never
	// both succeed.
	query := `
		UPDATE invites
		SET    used = TRUE
		WHERE  token_hash = $1
		  AND  used = FALSE
		  AND  expires_at > NOW()
		RETURNING id, token_hash, profile_id, role, expires_at, used, created_at`

	var inv domain.Invite
	err := r.pool.QueryRow(ctx, query, tokenHash).Scan(
		&inv.ID,
		&inv.TokenHash,
		&inv.ProfileID,
		&inv.Role,
		&inv.ExpiresAt,
		&inv.Used,
		&inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInviteInvalid
		}
		return nil, fmt.Errorf("claim invite: %w", err)
	}
	return &inv, nil
}
