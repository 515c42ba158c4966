package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/worklink-app/worklink/internal/domain"
)

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

const profileColumns = `id, name, surname, bio, website, is_company,
       address, legal_id, birth_date, sector, cv_path, created_at, updated_at`

func (r *ProfileRepository) Insert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	query := `
		INSERT INTO profiles (name, surname, bio, website, is_company,
		                      address, legal_id, birth_date, sector, cv_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + profileColumns

	row := r.pool.QueryRow(ctx, query,
		profile.Name,
		profile.Surname,
		profile.Bio,
		profile.Website,
		profile.IsCompany,
		profile.Address,
		profile.LegalID,
		profile.BirthDate,
		profile.Sector,
		profile.CVPath,
	)
	return scanProfile(row)
}

func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	return scanProfile(r.pool.QueryRow(ctx, query, id))
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Surname,
		&p.Bio,
		&p.Website,
		&p.IsCompany,
		&p.Address,
		&p.LegalID,
		&p.BirthDate,
		&p.Sector,
		&p.CVPath,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("scan profile: %w", err)
	}
	return &p, nil
}
