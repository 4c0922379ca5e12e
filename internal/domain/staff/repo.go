package staff

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a staff lookup matches no row.
var ErrNotFound = errors.New("staff not found")

type Repository interface {
	Create(ctx context.Context, s *Staff) error
	GetByID(ctx context.Context, id uuid.UUID) (*Staff, error)
	GetByName(ctx context.Context, name string) (*Staff, error)
	List(ctx context.Context) ([]*Staff, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}
