package staff

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	staff Repository
}

func NewService(staff Repository) *Service {
	return &Service{staff: staff}
}

// Create registers a staff member. Name, address and a known role are
// required; specialization is optional.
func (s *Service) Create(ctx context.Context, in CreateStaffInput) (*Staff, error) {
	if in.Name == "" || in.Address == "" || in.Role == "" {
		return nil, fmt.Errorf("name, address and role are required")
	}
	if !ValidRoles[in.Role] {
		return nil, fmt.Errorf("unknown role %q", in.Role)
	}

	st := &Staff{
		Name:           in.Name,
		Address:        in.Address,
		Role:           in.Role,
		Specialization: in.Specialization,
	}
	if err := s.staff.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Staff, error) {
	return s.staff.GetByID(ctx, id)
}

func (s *Service) GetByName(ctx context.Context, name string) (*Staff, error) {
	return s.staff.GetByName(ctx, name)
}

func (s *Service) List(ctx context.Context) ([]*Staff, error) {
	return s.staff.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.staff.Delete(ctx, id)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.staff.Count(ctx)
}
