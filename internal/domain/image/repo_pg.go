package image

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const imageCols = `id, patient_id, uploaded_by, type, disease_classification, image_url, uploaded_at`

func scanImage(row pgx.Row) (*MedicalImage, error) {
	var img MedicalImage
	err := row.Scan(&img.ID, &img.PatientID, &img.UploadedBy, &img.Type,
		&img.DiseaseClassification, &img.ImageURL, &img.UploadedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &img, err
}

func (r *repoPG) Create(ctx context.Context, img *MedicalImage) error {
	img.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO medical_images (id, patient_id, uploaded_by, type, disease_classification, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING uploaded_at`,
		img.ID, img.PatientID, img.UploadedBy, img.Type, img.DiseaseClassification, img.ImageURL,
	).Scan(&img.UploadedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*MedicalImage, error) {
	return scanImage(r.pool.QueryRow(ctx,
		`SELECT `+imageCols+` FROM medical_images WHERE id = $1`, id))
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*MedicalImage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+imageCols+` FROM medical_images WHERE patient_id = $1 ORDER BY uploaded_at DESC`,
		patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*MedicalImage
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, img)
	}
	return items, rows.Err()
}

func (r *repoPG) UpdateClassification(ctx context.Context, id uuid.UUID, scanType, disease string) (*MedicalImage, error) {
	return scanImage(r.pool.QueryRow(ctx, `
		UPDATE medical_images
		SET type = $2, disease_classification = $3
		WHERE id = $1
		RETURNING `+imageCols,
		id, scanType, disease))
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM medical_images WHERE id = $1`, id)
	return err
}
