package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a patient lookup matches no row.
var ErrNotFound = errors.New("patient not found")

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	List(ctx context.Context) ([]*Patient, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateDiagnosis(ctx context.Context, id uuid.UUID, diagnosis string) (*Patient, error)
	UpdateTotalCost(ctx context.Context, id uuid.UUID, total float64) error
	Count(ctx context.Context) (int, error)
}
