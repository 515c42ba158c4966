package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/worklink-app/worklink/internal/domain"
)

type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

func (r *SessionRepository) Insert(ctx context.Context, session *domain.Session) error {
	query := `
		INSERT INTO sessions (account_id, token_hash)
		VALUES ($1, $2)`

	if _, err := r.pool.Exec(ctx, query, session.AccountID, session.TokenHash); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *SessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	query := `
		SELECT id, account_id, token_hash, issued_at
		FROM sessions
		WHERE token_hash = $1`

	var s domain.Session
	err := r.pool.QueryRow(ctx, query, tokenHash).Scan(&s.ID, &s.AccountID, &s.TokenHash, &s.IssuedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTokenInvalid
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	return &s, nil
}

func (r *SessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE token_hash = $1`, tokenHash); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteForAccount(ctx context.Context, accountID string, keepTokenHash string) (int64, error) {
	query := `DELETE FROM sessions WHERE account_id = $1 AND token_hash <> $2`

	tag, err := r.pool.Exec(ctx, query, accountID, keepTokenHash)
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
