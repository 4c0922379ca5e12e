// Package report computes derived read models across the patient, image and
// financial stores. Reports are assembled on demand and never persisted, and
// report generation never fails solely because a patient id is unknown.
package report

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ims/ims/internal/domain/financial"
	"github.com/ims/ims/internal/domain/image"
	"github.com/ims/ims/internal/domain/patient"
)

// The aggregator depends on narrow views of the other services rather than
// their full surfaces.

type PatientGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*patient.Patient, error)
	Count(ctx context.Context) (int, error)
}

type ImageLister interface {
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*image.MedicalImage, error)
}

type CostReporter interface {
	GenerateCostReport(ctx context.Context, patientID uuid.UUID) (*financial.CostReport, error)
}

type StaffCounter interface {
	Count(ctx context.Context) (int, error)
}

// PatientHistory bundles a patient with everything recorded against them.
// Patient is null when the id matches no row; the image and task lookups
// still run and simply come back empty.
type PatientHistory struct {
	Patient     *patient.Patient      `json:"patient"`
	Images      []*image.MedicalImage `json:"images"`
	Tasks       []*financial.Task     `json:"tasks"`
	TotalCost   float64               `json:"totalCost"`
	GeneratedAt time.Time             `json:"generatedAt"`
}

// DiagnosticReport summarizes a patient's diagnosis and image classification
// counts. Always producible; missing fields fall back to placeholders.
type DiagnosticReport struct {
	PatientID              uuid.UUID      `json:"patientID"`
	PatientName            string         `json:"patientName"`
	Diagnosis              string         `json:"diagnosis"`
	DiseaseClassifications map[string]int `json:"diseaseClassifications"`
	ImageCount             int            `json:"imageCount"`
	GeneratedBy            string         `json:"generatedBy"`
	GeneratedAt            time.Time      `json:"generatedAt"`
}

// DashboardStats backs the landing-page counters.
type DashboardStats struct {
	PatientCount int       `json:"patientCount"`
	StaffCount   int       `json:"staffCount"`
	GeneratedAt  time.Time `json:"generatedAt"`
}

type Service struct {
	patients PatientGetter
	images   ImageLister
	costs    CostReporter
	staff    StaffCounter
}

func NewService(patients PatientGetter, images ImageLister, costs CostReporter, staff StaffCounter) *Service {
	return &Service{patients: patients, images: images, costs: costs, staff: staff}
}

// GeneratePatientHistory assembles the full picture for one patient. A
// missing patient yields a history with a null patient field and empty
// collections, not an error.
func (s *Service) GeneratePatientHistory(ctx context.Context, patientID uuid.UUID) (*PatientHistory, error) {
	p, err := s.patients.Get(ctx, patientID)
	if err != nil && !errors.Is(err, patient.ErrNotFound) {
		return nil, err
	}

	images, err := s.images.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if images == nil {
		images = []*image.MedicalImage{}
	}

	costs, err := s.costs.GenerateCostReport(ctx, patientID)
	if err != nil {
		return nil, err
	}

	return &PatientHistory{
		Patient:     p,
		Images:      images,
		Tasks:       costs.Tasks,
		TotalCost:   costs.TotalCost,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// GenerateDiagnosticReport counts the patient's images per disease label. An
// empty label contributes to the "unclassified" bucket; labels with zero
// images are never emitted. Patient fields fall back to placeholders so the
// report is producible even for an unknown patient id.
func (s *Service) GenerateDiagnosticReport(ctx context.Context, patientID uuid.UUID) (*DiagnosticReport, error) {
	name := "Unknown"
	diagnosis := "No diagnosis"

	p, err := s.patients.Get(ctx, patientID)
	if err != nil && !errors.Is(err, patient.ErrNotFound) {
		return nil, err
	}
	if p != nil {
		if p.Name != "" {
			name = p.Name
		}
		if p.Diagnosis != "" {
			diagnosis = p.Diagnosis
		}
	}

	images, err := s.images.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	classifications := make(map[string]int)
	for _, img := range images {
		label := img.DiseaseClassification
		if label == "" {
			label = "unclassified"
		}
		classifications[label]++
	}

	return &DiagnosticReport{
		PatientID:              patientID,
		PatientName:            name,
		Diagnosis:              diagnosis,
		DiseaseClassifications: classifications,
		ImageCount:             len(images),
		GeneratedBy:            "System",
		GeneratedAt:            time.Now().UTC(),
	}, nil
}

// GenerateDashboardStats returns the entity counts shown on the dashboard.
func (s *Service) GenerateDashboardStats(ctx context.Context) (*DashboardStats, error) {
	patients, err := s.patients.Count(ctx)
	if err != nil {
		return nil, err
	}
	staff, err := s.staff.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &DashboardStats{
		PatientCount: patients,
		StaffCount:   staff,
		GeneratedAt:  time.Now().UTC(),
	}, nil
}
