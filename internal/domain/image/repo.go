package image

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an image lookup matches no row.
var ErrNotFound = errors.New("image not found")

type Repository interface {
	Create(ctx context.Context, img *MedicalImage) error
	GetByID(ctx context.Context, id uuid.UUID) (*MedicalImage, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*MedicalImage, error)
	UpdateClassification(ctx context.Context, id uuid.UUID, scanType, disease string) (*MedicalImage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
