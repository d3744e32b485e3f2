package clinicalcase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/clinic/clinic/internal/platform/errs"
	"github.com/clinic/clinic/internal/platform/session"
)

type mockCaseRepo struct {
	cases map[uuid.UUID]*Case
}

func newMockCaseRepo() *mockCaseRepo {
	return &mockCaseRepo{cases: make(map[uuid.UUID]*Case)}
}

func (m *mockCaseRepo) Create(_ context.Context, c *Case) error {
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	m.cases[c.ID] = c
	return nil
}

func (m *mockCaseRepo) GetByID(_ context.Context, id uuid.UUID) (*Case, error) {
	c, ok := m.cases[id]
	if !ok {
		return nil, errs.NotFound("case")
	}
	return c, nil
}

func (m *mockCaseRepo) List(_ context.Context, limit, offset int) ([]*Case, int, error) {
	out := make([]*Case, 0, len(m.cases))
	for _, c := range m.cases {
		out = append(out, c)
	}
	return out, len(out), nil
}

func (m *mockCaseRepo) ListByPatient(_ context.Context, patientID uuid.UUID, limit, offset int) ([]*Case, int, error) {
	var out []*Case
	for _, c := range m.cases {
		if c.PatientID == patientID {
			out = append(out, c)
		}
	}
	return out, len(out), nil
}

func (m *mockCaseRepo) ListByDoctor(_ context.Context, doctorID uuid.UUID, limit, offset int) ([]*Case, int, error) {
	var out []*Case
	for _, c := range m.cases {
		if c.DoctorID == doctorID {
			out = append(out, c)
		}
	}
	return out, len(out), nil
}

func fullSession() session.Context {
	return session.Context{
		Doctor:  &session.ActiveDoctor{ID: uuid.NewString(), Name: "Dr. Rao"},
		Patient: &session.ActivePatient{ID: uuid.NewString(), Name: "Asha Verma"},
	}
}

func validInput() *CreateCaseInput {
	return &CreateCaseInput{
		Disease:     "Dengue",
		Description: "High fever with joint pain for three days",
		Date:        time.Now().UTC().Format("2006-01-02"),
	}
}

func TestCreateCasePublishesActiveCase(t *testing.T) {
	repo := newMockCaseRepo()
	svc := NewService(repo)
	sess := fullSession()

	created, active, err := svc.CreateCase(context.Background(), sess, validInput())
	if err != nil {
		t.Fatalf("CreateCase: %v", err)
	}
	if created.PatientID.String() != sess.Patient.ID {
		t.Errorf("patient id = %s, want %s from session", created.PatientID, sess.Patient.ID)
	}
	if created.DoctorID.String() != sess.Doctor.ID {
		t.Errorf("doctor id = %s, want %s from session", created.DoctorID, sess.Doctor.ID)
	}
	if active.ID != created.ID.String() {
		t.Errorf("active case id = %q, want %q", active.ID, created.ID)
	}
	if active.Disease != created.Disease {
		t.Errorf("active case disease = %q, want %q", active.Disease, created.Disease)
	}
	if !active.Date.Equal(created.Date) {
		t.Errorf("active case date = %v, want %v", active.Date, created.Date)
	}
	if _, ok := repo.cases[created.ID]; !ok {
		t.Error("case was not persisted")
	}
}

func TestCreateCaseValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateCaseInput)
		field  string
	}{
		{"short disease", func(in *CreateCaseInput) { in.Disease = "tb" }, "disease"},
		{"short description", func(in *CreateCaseInput) { in.Description = "fever" }, "description"},
		{"malformed date", func(in *CreateCaseInput) { in.Date = "01/02/2024" }, "date"},
		{"future date", func(in *CreateCaseInput) {
			in.Date = time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
		}, "date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockCaseRepo()
			svc := NewService(repo)
			in := validInput()
			tt.mutate(in)

			_, _, err := svc.CreateCase(context.Background(), fullSession(), in)
			e := errs.As(err)
			if e == nil || e.Kind != errs.KindValidation {
				t.Fatalf("err = %v, want validation error", err)
			}
			found := false
			for _, f := range e.Fields {
				if f.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("validation fields %v missing %q", e.Fields, tt.field)
			}
			if len(repo.cases) != 0 {
				t.Error("case persisted despite validation failure")
			}
		})
	}
}

func TestCreateCaseTodayAccepted(t *testing.T) {
	svc := NewService(newMockCaseRepo())
	in := validInput()
	in.Date = time.Now().UTC().Format("2006-01-02")
	if _, _, err := svc.CreateCase(context.Background(), fullSession(), in); err != nil {
		t.Fatalf("today's date rejected: %v", err)
	}
}

func TestCreateCaseMissingSession(t *testing.T) {
	repo := newMockCaseRepo()
	svc := NewService(repo)

	tests := []struct {
		name string
		sess session.Context
	}{
		{"no doctor", session.Context{Patient: &session.ActivePatient{ID: uuid.NewString()}}},
		{"no patient", session.Context{Doctor: &session.ActiveDoctor{ID: uuid.NewString()}}},
		{"empty session", session.Context{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.CreateCase(context.Background(), tt.sess, validInput())
			if !errs.IsKind(err, errs.KindMissingContext) {
				t.Fatalf("err = %v, want missing context", err)
			}
			if len(repo.cases) != 0 {
				t.Error("case persisted despite missing session context")
			}
		})
	}
}

func TestCreateCaseTrimsWhitespace(t *testing.T) {
	svc := NewService(newMockCaseRepo())
	in := validInput()
	in.Disease = "  Dengue  "
	created, active, err := svc.CreateCase(context.Background(), fullSession(), in)
	if err != nil {
		t.Fatalf("CreateCase: %v", err)
	}
	if created.Disease != "Dengue" {
		t.Errorf("disease = %q, want trimmed", created.Disease)
	}
	if active.Disease != "Dengue" {
		t.Errorf("active disease = %q, want trimmed", active.Disease)
	}
}
