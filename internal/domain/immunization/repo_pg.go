package immunization

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

type vaccineRepoPG struct{ db queryable }

func NewVaccineRepoPG(pool *pgxpool.Pool) VaccineRepository {
	return &vaccineRepoPG{db: pool}
}

const vaccineCols = `id, patient_id, name, description, date, created_at, updated_at`

func scanVaccine(row pgx.Row) (*Vaccine, error) {
	var v Vaccine
	err := row.Scan(&v.ID, &v.PatientID, &v.Name, &v.Description, &v.Date, &v.CreatedAt, &v.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.NotFound("vaccine")
	}
	return &v, err
}

func (r *vaccineRepoPG) Create(ctx context.Context, v *Vaccine) error {
	v.ID = uuid.New()
	_, err := r.db.Exec(ctx, `
		INSERT INTO vaccines (id, patient_id, name, description, date)
		VALUES ($1,$2,$3,$4,$5)`,
		v.ID, v.PatientID, v.Name, v.Description, v.Date)
	return err
}

func (r *vaccineRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Vaccine, error) {
	return scanVaccine(r.db.QueryRow(ctx, `SELECT `+vaccineCols+` FROM vaccines WHERE id = $1`, id))
}

func (r *vaccineRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Vaccine, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM vaccines WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `SELECT `+vaccineCols+` FROM vaccines WHERE patient_id = $1
		ORDER BY date DESC LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var vaccines []*Vaccine
	for rows.Next() {
		v, err := scanVaccine(rows)
		if err != nil {
			return nil, 0, err
		}
		vaccines = append(vaccines, v)
	}
	return vaccines, total, rows.Err()
}
