package image

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// FileStore abstracts the on-disk upload store.
type FileStore interface {
	Save(originalName string, content io.Reader) (string, error)
}

// UploadInput carries the multipart fields and file stream for an upload.
type UploadInput struct {
	PatientID  uuid.UUID
	UploadedBy string
	Type       string
	Disease    string
	FileName   string
	Content    io.Reader
}

type Service struct {
	images Repository
	files  FileStore
}

func NewService(images Repository, files FileStore) *Service {
	return &Service{images: images, files: files}
}

// Upload stores the file, then records its metadata. An empty disease
// classification is stored as "unclassified". If the metadata insert fails
// after the file was written, the file stays on disk.
func (s *Service) Upload(ctx context.Context, in UploadInput) (*MedicalImage, error) {
	if in.PatientID == uuid.Nil {
		return nil, fmt.Errorf("patient id is required")
	}
	if in.Type == "" {
		return nil, fmt.Errorf("image type is required")
	}

	storedName, err := s.files.Save(in.FileName, in.Content)
	if err != nil {
		return nil, err
	}

	disease := in.Disease
	if disease == "" {
		disease = "unclassified"
	}

	img := &MedicalImage{
		PatientID:             in.PatientID,
		UploadedBy:            in.UploadedBy,
		Type:                  in.Type,
		DiseaseClassification: disease,
		ImageURL:              "/uploads/" + storedName,
	}
	if err := s.images.Create(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*MedicalImage, error) {
	return s.images.GetByID(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*MedicalImage, error) {
	return s.images.ListByPatient(ctx, patientID)
}

// Reclassify replaces both the scan type and the disease classification.
func (s *Service) Reclassify(ctx context.Context, id uuid.UUID, scanType, disease string) (*MedicalImage, error) {
	if scanType == "" || disease == "" {
		return nil, fmt.Errorf("type and disease classification are required")
	}
	return s.images.UpdateClassification(ctx, id, scanType, disease)
}

// Delete removes the metadata row only; the stored file is left on disk.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.images.Delete(ctx, id)
}
