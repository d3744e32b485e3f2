package billing

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

type billRepoPG struct{ db queryable }

func NewBillRepoPG(pool *pgxpool.Pool) BillRepository {
	return &billRepoPG{db: pool}
}

const billCols = `id, patient_id, doctor_id, case_id, medicine_id, quantity,
	morning, afternoon, night, from_date, to_date, amount, created_at`

func scanBill(row pgx.Row) (*Bill, error) {
	var b Bill
	err := row.Scan(&b.ID, &b.PatientID, &b.DoctorID, &b.CaseID, &b.MedicineID, &b.Quantity,
		&b.Schedule.Morning, &b.Schedule.Afternoon, &b.Schedule.Night,
		&b.FromDate, &b.ToDate, &b.Amount, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.NotFound("bill")
	}
	return &b, err
}

func (r *billRepoPG) Create(ctx context.Context, b *Bill) error {
	b.ID = uuid.New()
	_, err := r.db.Exec(ctx, `
		INSERT INTO bills (id, patient_id, doctor_id, case_id, medicine_id, quantity,
			morning, afternoon, night, from_date, to_date, amount)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		b.ID, b.PatientID, b.DoctorID, b.CaseID, b.MedicineID, b.Quantity,
		b.Schedule.Morning, b.Schedule.Afternoon, b.Schedule.Night,
		b.FromDate, b.ToDate, b.Amount)
	return err
}

func (r *billRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Bill, error) {
	return scanBill(r.db.QueryRow(ctx, `SELECT `+billCols+` FROM bills WHERE id = $1`, id))
}

func (r *billRepoPG) ListByCase(ctx context.Context, caseID uuid.UUID, limit, offset int) ([]*Bill, int, error) {
	return r.list(ctx, `case_id = $1`, caseID, limit, offset)
}

func (r *billRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Bill, int, error) {
	return r.list(ctx, `patient_id = $1`, patientID, limit, offset)
}

func (r *billRepoPG) list(ctx context.Context, where string, id uuid.UUID, limit, offset int) ([]*Bill, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bills WHERE `+where, id).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `SELECT `+billCols+` FROM bills WHERE `+where+`
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`, id, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var bills []*Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, 0, err
		}
		bills = append(bills, b)
	}
	return bills, total, rows.Err()
}
