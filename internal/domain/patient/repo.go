package patient

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	Update(ctx context.Context, p *Patient) (*Patient, error)
	Delete(ctx context.Context, id uuid.UUID) (*Patient, error)
	List(ctx context.Context, f Filter) ([]*Row, error)
	Count(ctx context.Context, f Filter) (int, error)
	NextPatientCode(ctx context.Context) (int, error)
	ListDoctors(ctx context.Context) ([]*Doctor, error)
	ListTreatments(ctx context.Context) ([]*Treatment, error)
}
