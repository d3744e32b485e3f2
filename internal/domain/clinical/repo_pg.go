package clinical

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinic/clinic/internal/platform/errs"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type allergyRepoPG struct{ db queryable }

func NewAllergyRepoPG(pool *pgxpool.Pool) AllergyRepository {
	return &allergyRepoPG{db: pool}
}

const allergyCols = `id, patient_id, name, description, created_at, updated_at`

func scanAllergy(row pgx.Row) (*Allergy, error) {
	var a Allergy
	err := row.Scan(&a.ID, &a.PatientID, &a.Name, &a.Description, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.NotFound("allergy")
	}
	return &a, err
}

func (r *allergyRepoPG) Create(ctx context.Context, a *Allergy) error {
	a.ID = uuid.New()
	_, err := r.db.Exec(ctx, `
		INSERT INTO allergies (id, patient_id, name, description)
		VALUES ($1,$2,$3,$4)`,
		a.ID, a.PatientID, a.Name, a.Description)
	return err
}

func (r *allergyRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Allergy, error) {
	return scanAllergy(r.db.QueryRow(ctx, `SELECT `+allergyCols+` FROM allergies WHERE id = $1`, id))
}

func (r *allergyRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Allergy, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM allergies WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `SELECT `+allergyCols+` FROM allergies WHERE patient_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var allergies []*Allergy
	for rows.Next() {
		a, err := scanAllergy(rows)
		if err != nil {
			return nil, 0, err
		}
		allergies = append(allergies, a)
	}
	return allergies, total, rows.Err()
}
