package patient

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

// Create registers a patient with an empty diagnosis and a zero total cost.
// Only name and address are required.
func (s *Service) Create(ctx context.Context, in CreatePatientInput) (*Patient, error) {
	if in.Name == "" || in.Address == "" {
		return nil, fmt.Errorf("name and address are required")
	}

	conditions := in.Conditions
	if conditions == nil {
		conditions = []string{}
	}

	p := &Patient{
		Name:       in.Name,
		Address:    in.Address,
		Conditions: conditions,
		Diagnosis:  "",
		TotalCost:  0,
	}
	if err := s.patients.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Patient, error) {
	return s.patients.List(ctx)
}

// Delete removes the patient row only. Tasks and images referencing the
// patient are left in place, queryable by their raw ids.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.patients.Delete(ctx, id)
}

func (s *Service) UpdateDiagnosis(ctx context.Context, id uuid.UUID, diagnosis string) (*Patient, error) {
	if diagnosis == "" {
		return nil, fmt.Errorf("diagnosis is required")
	}
	return s.patients.UpdateDiagnosis(ctx, id, diagnosis)
}

// UpdateTotalCost overwrites the denormalized total. Called by the financial
// ledger after every task write; any numeric value is accepted.
func (s *Service) UpdateTotalCost(ctx context.Context, id uuid.UUID, total float64) error {
	return s.patients.UpdateTotalCost(ctx, id, total)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.patients.Count(ctx)
}
