package admin

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

type hospitalRepoPG struct{ db queryable }

func NewHospitalRepoPG(pool *pgxpool.Pool) HospitalRepository {
	return &hospitalRepoPG{db: pool}
}

const hospitalCols = `id, name, mobile, email, address, created_at, updated_at`

func scanHospital(row pgx.Row) (*Hospital, error) {
	var h Hospital
	err := row.Scan(&h.ID, &h.Name, &h.Mobile, &h.Email, &h.Address, &h.CreatedAt, &h.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.NotFound("hospital")
	}
	return &h, err
}

func (r *hospitalRepoPG) Create(ctx context.Context, h *Hospital) error {
	h.ID = uuid.New()
	_, err := r.db.Exec(ctx, `
		INSERT INTO hospitals (id, name, mobile, email, address)
		VALUES ($1,$2,$3,$4,$5)`,
		h.ID, h.Name, h.Mobile, h.Email, h.Address)
	return err
}

func (r *hospitalRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Hospital, error) {
	return scanHospital(r.db.QueryRow(ctx, `SELECT `+hospitalCols+` FROM hospitals WHERE id = $1`, id))
}

func (r *hospitalRepoPG) List(ctx context.Context, limit, offset int) ([]*Hospital, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM hospitals`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `SELECT `+hospitalCols+` FROM hospitals
		ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var hospitals []*Hospital
	for rows.Next() {
		h, err := scanHospital(rows)
		if err != nil {
			return nil, 0, err
		}
		hospitals = append(hospitals, h)
	}
	return hospitals, total, rows.Err()
}

func (r *hospitalRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM hospitals WHERE id = $1`, id)
	return err
}

type adminRepoPG struct{ db queryable }

func NewAdminRepoPG(pool *pgxpool.Pool) AdminRepository {
	return &adminRepoPG{db: pool}
}

func (r *adminRepoPG) GetByUsername(ctx context.Context, username string) (*Admin, error) {
	var a Admin
	err := r.db.QueryRow(ctx,
		`SELECT id, username, password_hash, created_at FROM admins WHERE username = $1`,
		username).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.NotFound("admin")
	}
	return &a, err
}

func (r *adminRepoPG) Create(ctx context.Context, a *Admin) error {
	a.ID = uuid.New()
	_, err := r.db.Exec(ctx,
		`INSERT INTO admins (id, username, password_hash) VALUES ($1,$2,$3)
		 ON CONFLICT (username) DO NOTHING`,
		a.ID, a.Username, a.PasswordHash)
	return err
}
