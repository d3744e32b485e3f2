package documents

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

type reportRepoPG struct{ db queryable }

func NewReportRepoPG(pool *pgxpool.Pool) ReportRepository {
	return &reportRepoPG{db: pool}
}

const reportCols = `id, case_id, doctor_id, type, description, file_key, file_name, content_type, size, created_at`

func scanReport(row pgx.Row) (*Report, error) {
	var r Report
	err := row.Scan(&r.ID, &r.CaseID, &r.DoctorID, &r.Type, &r.Description,
		&r.FileKey, &r.FileName, &r.ContentType, &r.Size, &r.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.NotFound("report")
	}
	return &r, err
}

func (r *reportRepoPG) Create(ctx context.Context, rep *Report) error {
	rep.ID = uuid.New()
	_, err := r.db.Exec(ctx, `
		INSERT INTO reports (id, case_id, doctor_id, type, description, file_key, file_name, content_type, size)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		rep.ID, rep.CaseID, rep.DoctorID, rep.Type, rep.Description,
		rep.FileKey, rep.FileName, rep.ContentType, rep.Size)
	return err
}

func (r *reportRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Report, error) {
	return scanReport(r.db.QueryRow(ctx, `SELECT `+reportCols+` FROM reports WHERE id = $1`, id))
}

func (r *reportRepoPG) ListByCase(ctx context.Context, caseID uuid.UUID, limit, offset int) ([]*Report, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reports WHERE case_id = $1`, caseID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `SELECT `+reportCols+` FROM reports WHERE case_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`, caseID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var reports []*Report
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, 0, err
		}
		reports = append(reports, rep)
	}
	return reports, total, rows.Err()
}

func (r *reportRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	return err
}
