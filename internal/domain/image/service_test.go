package image

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

// -- Mock Repository --

type mockRepo struct {
	items map[uuid.UUID]*MedicalImage
	order []uuid.UUID
}

func newMockRepo() *mockRepo {
	return &mockRepo{items: make(map[uuid.UUID]*MedicalImage)}
}

func (m *mockRepo) Create(_ context.Context, img *MedicalImage) error {
	img.ID = uuid.New()
	img.UploadedAt = time.Now()
	m.items[img.ID] = img
	m.order = append(m.order, img.ID)
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*MedicalImage, error) {
	img, ok := m.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return img, nil
}

func (m *mockRepo) ListByPatient(_ context.Context, patientID uuid.UUID) ([]*MedicalImage, error) {
	var result []*MedicalImage
	for i := len(m.order) - 1; i >= 0; i-- {
		if img, ok := m.items[m.order[i]]; ok && img.PatientID == patientID {
			result = append(result, img)
		}
	}
	return result, nil
}

func (m *mockRepo) UpdateClassification(_ context.Context, id uuid.UUID, scanType, disease string) (*MedicalImage, error) {
	img, ok := m.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	img.Type = scanType
	img.DiseaseClassification = disease
	return img, nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.items, id)
	return nil
}

// mockFileStore records saves without touching disk.
type mockFileStore struct {
	saves int
}

func (m *mockFileStore) Save(originalName string, content io.Reader) (string, error) {
	io.Copy(io.Discard, content)
	m.saves++
	return fmt.Sprintf("file-%d-stored.png", m.saves), nil
}

func newTestService() *Service {
	return NewService(newMockRepo(), &mockFileStore{})
}

func upload(t *testing.T, svc *Service, patientID uuid.UUID, disease string) *MedicalImage {
	t.Helper()
	img, err := svc.Upload(context.Background(), UploadInput{
		PatientID:  patientID,
		UploadedBy: "staff-1",
		Type:       "MRI",
		Disease:    disease,
		FileName:   "scan.png",
		Content:    strings.NewReader("pixels"),
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	return img
}

// -- Service Tests --

func TestService_Upload(t *testing.T) {
	svc := newTestService()
	patientID := uuid.New()

	img := upload(t, svc, patientID, "pneumonia")
	if img.ID == uuid.Nil {
		t.Error("expected assigned id")
	}
	if !strings.HasPrefix(img.ImageURL, "/uploads/") {
		t.Errorf("expected /uploads/ url, got %q", img.ImageURL)
	}
	if img.DiseaseClassification != "pneumonia" {
		t.Errorf("unexpected classification: %q", img.DiseaseClassification)
	}
}

func TestService_Upload_EmptyDiseaseDefaultsUnclassified(t *testing.T) {
	svc := newTestService()

	img := upload(t, svc, uuid.New(), "")
	if img.DiseaseClassification != "unclassified" {
		t.Errorf("expected unclassified, got %q", img.DiseaseClassification)
	}
}

func TestService_Upload_MissingPatient(t *testing.T) {
	svc := newTestService()

	_, err := svc.Upload(context.Background(), UploadInput{
		Type:     "MRI",
		FileName: "scan.png",
		Content:  strings.NewReader("pixels"),
	})
	if err == nil {
		t.Error("expected error for missing patient id")
	}
}

func TestService_Upload_MissingType(t *testing.T) {
	svc := newTestService()

	_, err := svc.Upload(context.Background(), UploadInput{
		PatientID: uuid.New(),
		FileName:  "scan.png",
		Content:   strings.NewReader("pixels"),
	})
	if err == nil {
		t.Error("expected error for missing type")
	}
}

func TestService_ListByPatient_NewestFirst(t *testing.T) {
	svc := newTestService()
	patientID := uuid.New()

	first := upload(t, svc, patientID, "a")
	second := upload(t, svc, patientID, "b")
	upload(t, svc, uuid.New(), "other patient")

	items, err := svc.ListByPatient(context.Background(), patientID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 images, got %d", len(items))
	}
	if items[0].ID != second.ID || items[1].ID != first.ID {
		t.Error("expected newest image first")
	}
}

func TestService_Reclassify(t *testing.T) {
	svc := newTestService()

	img := upload(t, svc, uuid.New(), "")

	updated, err := svc.Reclassify(context.Background(), img.ID, "CT", "fracture")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Type != "CT" || updated.DiseaseClassification != "fracture" {
		t.Errorf("unexpected reclassification: %+v", updated)
	}
}

func TestService_Reclassify_MissingFields(t *testing.T) {
	svc := newTestService()

	img := upload(t, svc, uuid.New(), "")

	if _, err := svc.Reclassify(context.Background(), img.ID, "", "fracture"); err == nil {
		t.Error("expected error for empty type")
	}
	if _, err := svc.Reclassify(context.Background(), img.ID, "CT", ""); err == nil {
		t.Error("expected error for empty disease")
	}
}

func TestService_Delete_RemovesRowOnly(t *testing.T) {
	files := &mockFileStore{}
	svc := NewService(newMockRepo(), files)

	img := upload(t, svc, uuid.New(), "")

	if err := svc.Delete(context.Background(), img.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Get(context.Background(), img.ID); err != ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	// The stored file count is untouched; delete never reaches the file store.
	if files.saves != 1 {
		t.Errorf("expected 1 stored file remaining, got %d", files.saves)
	}
}
