package clinicalcase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clinic/clinic/internal/platform/errs"
	"github.com/clinic/clinic/internal/platform/session"
)

type Service struct {
	cases CaseRepository
	now   func() time.Time
}

func NewService(cases CaseRepository) *Service {
	return &Service{cases: cases, now: time.Now}
}

// CreateCase opens a case for the doctor and patient in the session context
// and returns the published active case alongside the persisted record. The
// active case unconditionally replaces whatever case was active before.
func (s *Service) CreateCase(ctx context.Context, sess session.Context, in *CreateCaseInput) (*Case, session.ActiveCase, error) {
	if sess.Doctor == nil {
		return nil, session.ActiveCase{}, errs.MissingContext("doctor")
	}
	if sess.Patient == nil {
		return nil, session.ActiveCase{}, errs.MissingContext("patient")
	}

	doctorID, err := uuid.Parse(sess.Doctor.ID)
	if err != nil {
		return nil, session.ActiveCase{}, errs.MissingContext("doctor")
	}
	patientID, err := uuid.Parse(sess.Patient.ID)
	if err != nil {
		return nil, session.ActiveCase{}, errs.MissingContext("patient")
	}

	var fields []errs.FieldError
	disease := strings.TrimSpace(in.Disease)
	if len(disease) < 3 {
		fields = append(fields, errs.FieldError{Field: "disease", Message: "must be at least 3 characters"})
	}
	description := strings.TrimSpace(in.Description)
	if len(description) < 10 {
		fields = append(fields, errs.FieldError{Field: "description", Message: "must be at least 10 characters"})
	}

	var date time.Time
	parsed, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		fields = append(fields, errs.FieldError{Field: "date", Message: "must be an ISO date (YYYY-MM-DD)"})
	} else {
		date = parsed
		// Calendar-day comparison: today is fine, tomorrow is not.
		today := s.now().UTC().Truncate(24 * time.Hour)
		if date.After(today) {
			fields = append(fields, errs.FieldError{Field: "date", Message: "must not be in the future"})
		}
	}

	if len(fields) > 0 {
		return nil, session.ActiveCase{}, errs.Validation(fields...)
	}

	c := &Case{
		PatientID:   patientID,
		DoctorID:    doctorID,
		Disease:     disease,
		Description: description,
		Date:        date,
	}
	if err := s.cases.Create(ctx, c); err != nil {
		return nil, session.ActiveCase{}, err
	}

	active := session.ActiveCase{
		ID:      c.ID.String(),
		Disease: c.Disease,
		Date:    c.Date,
	}
	return c, active, nil
}

func (s *Service) GetCase(ctx context.Context, id uuid.UUID) (*Case, error) {
	return s.cases.GetByID(ctx, id)
}

func (s *Service) ListCases(ctx context.Context, limit, offset int) ([]*Case, int, error) {
	return s.cases.List(ctx, limit, offset)
}

func (s *Service) ListCasesByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Case, int, error) {
	return s.cases.ListByPatient(ctx, patientID, limit, offset)
}

func (s *Service) ListCasesByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Case, int, error) {
	return s.cases.ListByDoctor(ctx, doctorID, limit, offset)
}
