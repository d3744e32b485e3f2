package identity

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

// =========== Patient Repository ===========

type patientRepoPG struct{ db queryable }

func NewPatientRepoPG(pool *pgxpool.Pool) PatientRepository {
	return &patientRepoPG{db: pool}
}

const patientCols = `id, name, mobile, national_id, email, address,
	date_of_birth, gender, password_hash, created_at, updated_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.Name, &p.Mobile, &p.NationalID, &p.Email, &p.Address,
		&p.DateOfBirth, &p.Gender, &p.PasswordHash, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.NotFound("patient")
	}
	return &p, err
}

func (r *patientRepoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	_, err := r.db.Exec(ctx, `
		INSERT INTO patients (id, name, mobile, national_id, email, address,
			date_of_birth, gender, password_hash)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		p.ID, p.Name, p.Mobile, p.NationalID, p.Email, p.Address,
		p.DateOfBirth, p.Gender, p.PasswordHash)
	return err
}

func (r *patientRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return scanPatient(r.db.QueryRow(ctx, `SELECT `+patientCols+` FROM patients WHERE id = $1`, id))
}

func (r *patientRepoPG) GetByNationalID(ctx context.Context, nationalID string) (*Patient, error) {
	return scanPatient(r.db.QueryRow(ctx, `SELECT `+patientCols+` FROM patients WHERE national_id = $1`, nationalID))
}

func (r *patientRepoPG) Update(ctx context.Context, p *Patient) error {
	_, err := r.db.Exec(ctx, `
		UPDATE patients SET name=$2, mobile=$3, email=$4, address=$5,
			date_of_birth=$6, gender=$7, updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.Name, p.Mobile, p.Email, p.Address, p.DateOfBirth, p.Gender)
	return err
}

func (r *patientRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM patients WHERE id = $1`, id)
	return err
}

func (r *patientRepoPG) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM patients`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `SELECT `+patientCols+` FROM patients
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var patients []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, 0, err
		}
		patients = append(patients, p)
	}
	return patients, total, rows.Err()
}

func (r *patientRepoPG) ExistsNationalID(ctx context.Context, nationalID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM patients WHERE national_id = $1)`, nationalID).Scan(&exists)
	return exists, err
}

// =========== Doctor Repository ===========

type doctorRepoPG struct{ db queryable }

func NewDoctorRepoPG(pool *pgxpool.Pool) DoctorRepository {
	return &doctorRepoPG{db: pool}
}

const doctorCols = `id, name, specialty, mobile, email, address,
	hospital_id, password_hash, created_at, updated_at`

func scanDoctor(row pgx.Row) (*Doctor, error) {
	var d Doctor
	err := row.Scan(&d.ID, &d.Name, &d.Specialty, &d.Mobile, &d.Email, &d.Address,
		&d.HospitalID, &d.PasswordHash, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.NotFound("doctor")
	}
	return &d, err
}

func (r *doctorRepoPG) Create(ctx context.Context, d *Doctor) error {
	d.ID = uuid.New()
	_, err := r.db.Exec(ctx, `
		INSERT INTO doctors (id, name, specialty, mobile, email, address,
			hospital_id, password_hash)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		d.ID, d.Name, d.Specialty, d.Mobile, d.Email, d.Address,
		d.HospitalID, d.PasswordHash)
	return err
}

func (r *doctorRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return scanDoctor(r.db.QueryRow(ctx, `SELECT `+doctorCols+` FROM doctors WHERE id = $1`, id))
}

func (r *doctorRepoPG) GetByMobile(ctx context.Context, mobile string) (*Doctor, error) {
	return scanDoctor(r.db.QueryRow(ctx, `SELECT `+doctorCols+` FROM doctors WHERE mobile = $1`, mobile))
}

func (r *doctorRepoPG) Update(ctx context.Context, d *Doctor) error {
	_, err := r.db.Exec(ctx, `
		UPDATE doctors SET name=$2, specialty=$3, mobile=$4, email=$5,
			address=$6, hospital_id=$7, updated_at=NOW()
		WHERE id = $1`,
		d.ID, d.Name, d.Specialty, d.Mobile, d.Email, d.Address, d.HospitalID)
	return err
}

func (r *doctorRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM doctors WHERE id = $1`, id)
	return err
}

func (r *doctorRepoPG) List(ctx context.Context, limit, offset int) ([]*Doctor, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM doctors`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `SELECT `+doctorCols+` FROM doctors
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var doctors []*Doctor
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, 0, err
		}
		doctors = append(doctors, d)
	}
	return doctors, total, rows.Err()
}

func (r *doctorRepoPG) ExistsMobile(ctx context.Context, mobile string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM doctors WHERE mobile = $1)`, mobile).Scan(&exists)
	return exists, err
}
