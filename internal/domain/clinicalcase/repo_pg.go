package clinicalcase

import (
	"context"
	"errors"
	"fmt"

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

type caseRepoPG struct{ db queryable }

func NewCaseRepoPG(pool *pgxpool.Pool) CaseRepository {
	return &caseRepoPG{db: pool}
}

const caseCols = `id, patient_id, doctor_id, disease, description, date, created_at, updated_at`

func scanCase(row pgx.Row) (*Case, error) {
	var c Case
	err := row.Scan(&c.ID, &c.PatientID, &c.DoctorID, &c.Disease, &c.Description,
		&c.Date, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.NotFound("case")
	}
	return &c, err
}

func (r *caseRepoPG) Create(ctx context.Context, c *Case) error {
	c.ID = uuid.New()
	_, err := r.db.Exec(ctx, `
		INSERT INTO cases (id, patient_id, doctor_id, disease, description, date)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		c.ID, c.PatientID, c.DoctorID, c.Disease, c.Description, c.Date)
	return err
}

func (r *caseRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Case, error) {
	return scanCase(r.db.QueryRow(ctx, `SELECT `+caseCols+` FROM cases WHERE id = $1`, id))
}

func (r *caseRepoPG) list(ctx context.Context, where string, args []interface{}, limit, offset int) ([]*Case, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM cases`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	n := len(args)
	rows, err := r.db.Query(ctx, fmt.Sprintf(
		`SELECT %s FROM cases%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		caseCols, where, n-1, n), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var cases []*Case
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, 0, err
		}
		cases = append(cases, c)
	}
	return cases, total, rows.Err()
}

func (r *caseRepoPG) List(ctx context.Context, limit, offset int) ([]*Case, int, error) {
	return r.list(ctx, "", nil, limit, offset)
}

func (r *caseRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Case, int, error) {
	return r.list(ctx, ` WHERE patient_id = $1`, []interface{}{patientID}, limit, offset)
}

func (r *caseRepoPG) ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Case, int, error) {
	return r.list(ctx, ` WHERE doctor_id = $1`, []interface{}{doctorID}, limit, offset)
}
