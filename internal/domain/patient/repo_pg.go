package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const patientCols = `id, name, address, conditions, diagnosis, total_cost, medical_history, created_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.Name, &p.Address, &p.Conditions, &p.Diagnosis,
		&p.TotalCost, &p.MedicalHistory, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &p, err
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	if p.Conditions == nil {
		p.Conditions = []string{}
	}
	if p.MedicalHistory == nil {
		p.MedicalHistory = []uuid.UUID{}
	}
	return r.pool.QueryRow(ctx, `
		INSERT INTO patients (id, name, address, conditions, diagnosis, total_cost, medical_history)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`,
		p.ID, p.Name, p.Address, p.Conditions, p.Diagnosis, p.TotalCost, p.MedicalHistory,
	).Scan(&p.CreatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients WHERE id = $1`, id))
}

func (r *repoPG) List(ctx context.Context) ([]*Patient, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+patientCols+` FROM patients ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM patients WHERE id = $1`, id)
	return err
}

func (r *repoPG) UpdateDiagnosis(ctx context.Context, id uuid.UUID, diagnosis string) (*Patient, error) {
	return scanPatient(r.pool.QueryRow(ctx, `
		UPDATE patients SET diagnosis = $2 WHERE id = $1
		RETURNING `+patientCols, id, diagnosis))
}

func (r *repoPG) UpdateTotalCost(ctx context.Context, id uuid.UUID, total float64) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE patients SET total_cost = $2 WHERE id = $1`, id, total)
	return err
}

func (r *repoPG) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM patients`).Scan(&count)
	return count, err
}
