package medication

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

type medicineRepoPG struct{ db queryable }

func NewMedicineRepoPG(pool *pgxpool.Pool) MedicineRepository {
	return &medicineRepoPG{db: pool}
}

const medicineCols = `id, name, unit_price, description, created_at, updated_at`

func scanMedicine(row pgx.Row) (*Medicine, error) {
	var m Medicine
	err := row.Scan(&m.ID, &m.Name, &m.UnitPrice, &m.Description, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.NotFound("medicine")
	}
	return &m, err
}

func (r *medicineRepoPG) Create(ctx context.Context, m *Medicine) error {
	m.ID = uuid.New()
	_, err := r.db.Exec(ctx, `
		INSERT INTO medicines (id, name, unit_price, description)
		VALUES ($1,$2,$3,$4)`,
		m.ID, m.Name, m.UnitPrice, m.Description)
	return err
}

func (r *medicineRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Medicine, error) {
	return scanMedicine(r.db.QueryRow(ctx, `SELECT `+medicineCols+` FROM medicines WHERE id = $1`, id))
}

func (r *medicineRepoPG) List(ctx context.Context, limit, offset int) ([]*Medicine, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM medicines`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `SELECT `+medicineCols+` FROM medicines
		ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var medicines []*Medicine
	for rows.Next() {
		m, err := scanMedicine(rows)
		if err != nil {
			return nil, 0, err
		}
		medicines = append(medicines, m)
	}
	return medicines, total, rows.Err()
}

func (r *medicineRepoPG) ListCatalog(ctx context.Context) ([]*CatalogEntry, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, unit_price FROM medicines ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*CatalogEntry
	for rows.Next() {
		var e CatalogEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.UnitPrice); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

func (r *medicineRepoPG) Update(ctx context.Context, m *Medicine) error {
	_, err := r.db.Exec(ctx, `
		UPDATE medicines SET name=$2, unit_price=$3, description=$4, updated_at=NOW()
		WHERE id = $1`,
		m.ID, m.Name, m.UnitPrice, m.Description)
	return err
}

func (r *medicineRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM medicines WHERE id = $1`, id)
	return err
}
