package financial

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, t *Task) error
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Task, error)
	SumByPatient(ctx context.Context, patientID uuid.UUID) (float64, error)
}
