package financial

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TotalCostUpdater pushes a recomputed total into the patient record. It is
// satisfied by the patient service; the ledger is the only writer that
// reaches across into patient state.
type TotalCostUpdater interface {
	UpdateTotalCost(ctx context.Context, id uuid.UUID, total float64) error
}

type Service struct {
	tasks    Repository
	patients TotalCostUpdater
}

func NewService(tasks Repository, patients TotalCostUpdater) *Service {
	return &Service{tasks: tasks, patients: patients}
}

// RecordTask inserts the task, recomputes the live sum for the patient, and
// pushes it into the patient record. The two writes are not a transaction:
// if the push fails the task is already persisted and the error surfaces to
// the caller, leaving the denormalized total stale until the next record.
// Concurrent records for the same patient may race on the push, but because
// each push carries a full re-derived sum the stored total converges to the
// live sum once the last push lands.
func (s *Service) RecordTask(ctx context.Context, in RecordTaskInput) (*Task, error) {
	if in.PatientID == uuid.Nil {
		return nil, fmt.Errorf("patient id is required")
	}
	if in.Description == "" {
		return nil, fmt.Errorf("description is required")
	}

	t := &Task{
		PatientID:   in.PatientID,
		Description: in.Description,
		Cost:        in.Cost,
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}

	total, err := s.tasks.SumByPatient(ctx, in.PatientID)
	if err != nil {
		return nil, fmt.Errorf("recompute total for patient %s: %w", in.PatientID, err)
	}
	if err := s.patients.UpdateTotalCost(ctx, in.PatientID, total); err != nil {
		return nil, fmt.Errorf("push total to patient %s: %w", in.PatientID, err)
	}
	return t, nil
}

// CalculateTotalCost returns the live sum over the task table, the source of
// truth for a patient's cost.
func (s *Service) CalculateTotalCost(ctx context.Context, patientID uuid.UUID) (float64, error) {
	return s.tasks.SumByPatient(ctx, patientID)
}

func (s *Service) ListTasks(ctx context.Context, patientID uuid.UUID) ([]*Task, error) {
	return s.tasks.ListByPatient(ctx, patientID)
}

// GenerateCostReport bundles the patient's tasks with a live total. An
// unknown patient id yields an empty report, not an error.
func (s *Service) GenerateCostReport(ctx context.Context, patientID uuid.UUID) (*CostReport, error) {
	tasks, err := s.tasks.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []*Task{}
	}
	total, err := s.tasks.SumByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return &CostReport{
		PatientID:   patientID,
		Tasks:       tasks,
		TotalCost:   total,
		GeneratedAt: time.Now().UTC(),
	}, nil
}
