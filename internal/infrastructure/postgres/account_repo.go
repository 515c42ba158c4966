package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/worklink-app/worklink/internal/domain"
)

type AccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

const accountColumns = `id, email, password_hash, role, profile_id, verified,
       password_changed_at, created_at, updated_at`

func (r *AccountRepository) Insert(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (email, password_hash, role, profile_id)
		VALUES (lower($1), $2, $3, $4)
		RETURNING ` + accountColumns

	row := r.pool.QueryRow(ctx, query,
		account.Email,
		account.PasswordHash,
		account.Role,
		account.ProfileID,
	)

	created, err := scanAccount(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	return created, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return scanAccount(r.pool.QueryRow(ctx, query, id))
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = lower($1)`
	return scanAccount(r.pool.QueryRow(ctx, query, email))
}

func (r *AccountRepository) LinkProfile(ctx context.Context, accountID, profileID string) error {
	// profile_id IS NULL makes linking one-shot per account.
	query := `
		UPDATE accounts
		SET    profile_id = $2, updated_at = NOW()
		WHERE  id = $1 AND profile_id IS NULL`

	tag, err := r.pool.Exec(ctx, query, accountID, profileID)
	if err != nil {
		return fmt.Errorf("link profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProfileLinked
	}
	return nil
}

func (r *AccountRepository) UpdatePassword(ctx context.Context, accountID string, passwordHash []byte) error {
	query := `
		UPDATE accounts
		SET    password_hash = $2, password_changed_at = NOW(), updated_at = NOW()
		WHERE  id = $1`

	tag, err := r.pool.Exec(ctx, query, accountID, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.ID,
		&a.Email,
		&a.PasswordHash,
		&a.Role,
		&a.ProfileID,
		&a.Verified,
		&a.PasswordChangedAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}
	return &a, nil
}
