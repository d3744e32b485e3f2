package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/clinic/clinic/internal/platform/auth"
	"github.com/clinic/clinic/internal/platform/errs"
)

// -- Mock Repositories --

type mockPatientRepo struct {
	patients map[uuid.UUID]*Patient
}

func newMockPatientRepo() *mockPatientRepo {
	return &mockPatientRepo{patients: make(map[uuid.UUID]*Patient)}
}

func (m *mockPatientRepo) Create(_ context.Context, p *Patient) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
	m.patients[p.ID] = p
	return nil
}

func (m *mockPatientRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, errs.NotFound("patient")
	}
	return p, nil
}

func (m *mockPatientRepo) GetByNationalID(_ context.Context, nationalID string) (*Patient, error) {
	for _, p := range m.patients {
		if p.NationalID == nationalID {
			return p, nil
		}
	}
	return nil, errs.NotFound("patient")
}

func (m *mockPatientRepo) Update(_ context.Context, p *Patient) error {
	if _, ok := m.patients[p.ID]; !ok {
		return errs.NotFound("patient")
	}
	m.patients[p.ID] = p
	return nil
}

func (m *mockPatientRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.patients, id)
	return nil
}

func (m *mockPatientRepo) List(_ context.Context, limit, offset int) ([]*Patient, int, error) {
	var result []*Patient
	for _, p := range m.patients {
		result = append(result, p)
	}
	total := len(result)
	if offset >= len(result) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(result) {
		end = len(result)
	}
	return result[offset:end], total, nil
}

func (m *mockPatientRepo) ExistsNationalID(_ context.Context, nationalID string) (bool, error) {
	for _, p := range m.patients {
		if p.NationalID == nationalID {
			return true, nil
		}
	}
	return false, nil
}

type mockDoctorRepo struct {
	doctors map[uuid.UUID]*Doctor
}

func newMockDoctorRepo() *mockDoctorRepo {
	return &mockDoctorRepo{doctors: make(map[uuid.UUID]*Doctor)}
}

func (m *mockDoctorRepo) Create(_ context.Context, d *Doctor) error {
	d.ID = uuid.New()
	d.CreatedAt = time.Now()
	d.UpdatedAt = time.Now()
	m.doctors[d.ID] = d
	return nil
}

func (m *mockDoctorRepo) GetByID(_ context.Context, id uuid.UUID) (*Doctor, error) {
	d, ok := m.doctors[id]
	if !ok {
		return nil, errs.NotFound("doctor")
	}
	return d, nil
}

func (m *mockDoctorRepo) GetByMobile(_ context.Context, mobile string) (*Doctor, error) {
	for _, d := range m.doctors {
		if d.Mobile == mobile {
			return d, nil
		}
	}
	return nil, errs.NotFound("doctor")
}

func (m *mockDoctorRepo) Update(_ context.Context, d *Doctor) error {
	if _, ok := m.doctors[d.ID]; !ok {
		return errs.NotFound("doctor")
	}
	m.doctors[d.ID] = d
	return nil
}

func (m *mockDoctorRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.doctors, id)
	return nil
}

func (m *mockDoctorRepo) List(_ context.Context, limit, offset int) ([]*Doctor, int, error) {
	var result []*Doctor
	for _, d := range m.doctors {
		result = append(result, d)
	}
	total := len(result)
	if offset >= len(result) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(result) {
		end = len(result)
	}
	return result[offset:end], total, nil
}

func (m *mockDoctorRepo) ExistsMobile(_ context.Context, mobile string) (bool, error) {
	for _, d := range m.doctors {
		if d.Mobile == mobile {
			return true, nil
		}
	}
	return false, nil
}

func newTestService() (*Service, *mockPatientRepo, *mockDoctorRepo) {
	patients := newMockPatientRepo()
	doctors := newMockDoctorRepo()
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	return NewService(patients, doctors, tokens), patients, doctors
}

func validPatientInput() *RegisterPatientInput {
	return &RegisterPatientInput{
		Name:       "Anita Sharma",
		Mobile:     "9876543210",
		NationalID: "123456789012",
		Email:      "anita@example.com",
		Password:   "s3cret-pass",
	}
}

// -- Patient tests --

func TestRegisterPatient(t *testing.T) {
	svc, repo, _ := newTestService()

	p, err := svc.RegisterPatient(context.Background(), validPatientInput())
	if err != nil {
		t.Fatalf("RegisterPatient: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Error("expected generated id")
	}
	if p.PasswordHash == "" || p.PasswordHash == "s3cret-pass" {
		t.Error("password must be stored hashed")
	}
	if len(repo.patients) != 1 {
		t.Errorf("repo has %d patients, want 1", len(repo.patients))
	}
}

func TestRegisterPatientValidation(t *testing.T) {
	svc, repo, _ := newTestService()

	cases := []struct {
		name   string
		mutate func(*RegisterPatientInput)
		field  string
	}{
		{"short name", func(in *RegisterPatientInput) { in.Name = "Al" }, "name"},
		{"bad mobile", func(in *RegisterPatientInput) { in.Mobile = "12345" }, "mobile"},
		{"bad national id", func(in *RegisterPatientInput) { in.NationalID = "123" }, "national_id"},
		{"short password", func(in *RegisterPatientInput) { in.Password = "short" }, "password"},
		{"bad dob", func(in *RegisterPatientInput) { in.DateOfBirth = "31-01-1990" }, "date_of_birth"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validPatientInput()
			tc.mutate(in)
			_, err := svc.RegisterPatient(context.Background(), in)
			appErr := errs.As(err)
			if appErr == nil || appErr.Kind != errs.KindValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
			found := false
			for _, f := range appErr.Fields {
				if f.Field == tc.field {
					found = true
				}
			}
			if !found {
				t.Errorf("expected field %q in %+v", tc.field, appErr.Fields)
			}
		})
	}

	if len(repo.patients) != 0 {
		t.Errorf("validation failures must not persist, repo has %d", len(repo.patients))
	}
}

func TestRegisterPatientDuplicateNationalID(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.RegisterPatient(context.Background(), validPatientInput()); err != nil {
		t.Fatalf("first register: %v", err)
	}
	in := validPatientInput()
	in.Mobile = "9999999999"
	_, err := svc.RegisterPatient(context.Background(), in)
	if !errs.IsKind(err, errs.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestLoginPatient(t *testing.T) {
	svc, _, _ := newTestService()
	if _, err := svc.RegisterPatient(context.Background(), validPatientInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	result, err := svc.LoginPatient(context.Background(), "123456789012", "s3cret-pass")
	if err != nil {
		t.Fatalf("LoginPatient: %v", err)
	}
	if result.Token == "" {
		t.Error("expected session token")
	}
	if result.Role != auth.RolePatient {
		t.Errorf("role = %q", result.Role)
	}

	if _, err := svc.LoginPatient(context.Background(), "123456789012", "wrong-pass"); !errs.IsKind(err, errs.KindUnauthorized) {
		t.Errorf("wrong password: expected unauthorized, got %v", err)
	}
	if _, err := svc.LoginPatient(context.Background(), "000000000000", "s3cret-pass"); !errs.IsKind(err, errs.KindUnauthorized) {
		t.Errorf("unknown national id: expected unauthorized, got %v", err)
	}
}

func TestNationalIDAvailable(t *testing.T) {
	svc, _, _ := newTestService()
	if _, err := svc.RegisterPatient(context.Background(), validPatientInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	available, err := svc.NationalIDAvailable(context.Background(), "123456789012")
	if err != nil {
		t.Fatalf("NationalIDAvailable: %v", err)
	}
	if available {
		t.Error("registered national id should not be available")
	}

	available, err = svc.NationalIDAvailable(context.Background(), "999999999999")
	if err != nil {
		t.Fatalf("NationalIDAvailable: %v", err)
	}
	if !available {
		t.Error("unregistered national id should be available")
	}

	if _, err := svc.NationalIDAvailable(context.Background(), "abc"); !errs.IsKind(err, errs.KindValidation) {
		t.Errorf("malformed id: expected validation error, got %v", err)
	}
}

// -- Doctor tests --

func validDoctorInput() *RegisterDoctorInput {
	return &RegisterDoctorInput{
		Name:      "Dr. Rao",
		Specialty: "cardiology",
		Mobile:    "9123456780",
		Password:  "s3cret-pass",
	}
}

func TestRegisterAndLoginDoctor(t *testing.T) {
	svc, _, _ := newTestService()

	d, err := svc.RegisterDoctor(context.Background(), validDoctorInput())
	if err != nil {
		t.Fatalf("RegisterDoctor: %v", err)
	}
	if d.Specialty != "cardiology" {
		t.Errorf("specialty = %q", d.Specialty)
	}

	result, err := svc.LoginDoctor(context.Background(), "9123456780", "s3cret-pass")
	if err != nil {
		t.Fatalf("LoginDoctor: %v", err)
	}
	if result.Role != auth.RoleDoctor {
		t.Errorf("role = %q", result.Role)
	}
}

func TestRegisterDoctorDuplicateMobile(t *testing.T) {
	svc, _, _ := newTestService()
	if _, err := svc.RegisterDoctor(context.Background(), validDoctorInput()); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.RegisterDoctor(context.Background(), validDoctorInput()); !errs.IsKind(err, errs.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestMobileAvailable(t *testing.T) {
	svc, _, _ := newTestService()
	if _, err := svc.RegisterDoctor(context.Background(), validDoctorInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	available, err := svc.MobileAvailable(context.Background(), "9123456780")
	if err != nil {
		t.Fatalf("MobileAvailable: %v", err)
	}
	if available {
		t.Error("registered mobile should not be available")
	}
}
