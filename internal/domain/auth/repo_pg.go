package auth

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

const userCols = `id, username, password_hash, email, first_name, last_name, suffix,
	discipline, agency_employee_id, phone1, phone2, employee_type, permissions, created_at`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.FirstName, &u.LastName,
		&u.Suffix, &u.Discipline, &u.AgencyEmployeeID, &u.Phone1, &u.Phone2,
		&u.EmployeeType, &u.Permissions, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repoPG) Create(ctx context.Context, u *User) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, `
			INSERT INTO users (username, password_hash, email, first_name, last_name, suffix,
				discipline, agency_employee_id, phone1, phone2, employee_type, permissions)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING id, created_at`,
			u.Username, u.PasswordHash, u.Email, u.FirstName, u.LastName, u.Suffix,
			u.Discipline, u.AgencyEmployeeID, u.Phone1, u.Phone2, u.EmployeeType, u.Permissions,
		).Scan(&u.ID, &u.CreatedAt)
	})
}

func (r *repoPG) GetByUsername(ctx context.Context, username string) (*User, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+userCols+" FROM users WHERE username = $1", username)
	return scanUser(row)
}
