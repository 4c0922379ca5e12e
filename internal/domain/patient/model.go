package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patients table. TotalCost is a denormalized copy of the
// patient's task cost sum, pushed by the financial ledger after every task
// write; the ledger's live sum is the source of truth and this field may lag
// it briefly. MedicalHistory holds task references and mirrors the table
// column; the ledger does not maintain it.
type Patient struct {
	ID             uuid.UUID   `db:"id" json:"id"`
	Name           string      `db:"name" json:"name"`
	Address        string      `db:"address" json:"address"`
	Conditions     []string    `db:"conditions" json:"conditions"`
	Diagnosis      string      `db:"diagnosis" json:"diagnosis"`
	TotalCost      float64     `db:"total_cost" json:"totalCost"`
	MedicalHistory []uuid.UUID `db:"medical_history" json:"medicalHistory"`
	CreatedAt      time.Time   `db:"created_at" json:"createdAt"`
}

// CreatePatientInput carries the fields accepted when registering a patient.
type CreatePatientInput struct {
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Conditions []string `json:"conditions"`
}
