package image

import (
	"time"

	"github.com/google/uuid"
)

// MedicalImage is the metadata row for an uploaded scan. The file itself
// lives on disk under the upload directory; ImageURL is the static path it is
// served from. PatientID and UploadedBy are plain uuid references with no
// integrity constraint behind them.
type MedicalImage struct {
	ID                    uuid.UUID `db:"id" json:"id"`
	PatientID             uuid.UUID `db:"patient_id" json:"patientID"`
	UploadedBy            string    `db:"uploaded_by" json:"uploadedBy"`
	Type                  string    `db:"type" json:"type"`
	DiseaseClassification string    `db:"disease_classification" json:"diseaseClassification"`
	ImageURL              string    `db:"image_url" json:"imageUrl"`
	UploadedAt            time.Time `db:"uploaded_at" json:"uploadedAt"`
}
