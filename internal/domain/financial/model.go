package financial

import (
	"time"

	"github.com/google/uuid"
)

// Task is a single billable line item for a patient. Tasks are immutable;
// there is no update or delete operation.
type Task struct {
	ID          uuid.UUID `db:"id" json:"id"`
	PatientID   uuid.UUID `db:"patient_id" json:"patientID"`
	Description string    `db:"description" json:"description"`
	Cost        float64   `db:"cost" json:"cost"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// RecordTaskInput carries the fields accepted when recording a task.
type RecordTaskInput struct {
	PatientID   uuid.UUID `json:"patientID"`
	Description string    `json:"description"`
	Cost        float64   `json:"cost"`
}

// CostReport is a derived read model; it is computed on demand and never
// stored.
type CostReport struct {
	PatientID   uuid.UUID `json:"patientID"`
	Tasks       []*Task   `json:"tasks"`
	TotalCost   float64   `json:"totalCost"`
	GeneratedAt time.Time `json:"generatedAt"`
}
