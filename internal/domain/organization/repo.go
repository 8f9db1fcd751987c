package organization

import (
	"context"
)

// Repository is the persistence boundary for organizations.
type Repository interface {
	Create(ctx context.Context, o *Organization) error
	GetByEmail(ctx context.Context, email string) (*Organization, error)
}
