package organization

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caresync/caresync/internal/platform/db"
)

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG returns a Repository backed by the shared pgx pool.
func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const orgCols = `id, name, address, city, state, zip_code, phone, email, password_hash, created_at`

func scanOrganization(row pgx.Row) (*Organization, error) {
	var o Organization
	err := row.Scan(
		&o.ID, &o.Name, &o.Address, &o.City, &o.State, &o.ZipCode,
		&o.Phone, &o.Email, &o.PasswordHash, &o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repoPG) Create(ctx context.Context, o *Organization) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, `
			INSERT INTO organizations (name, address, city, state, zip_code, phone, email, password_hash)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id, created_at`,
			o.Name, o.Address, o.City, o.State, o.ZipCode, o.Phone, o.Email, o.PasswordHash,
		).Scan(&o.ID, &o.CreatedAt)
	})
}

func (r *repoPG) GetByEmail(ctx context.Context, email string) (*Organization, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+orgCols+" FROM organizations WHERE email = $1", email)
	return scanOrganization(row)
}
