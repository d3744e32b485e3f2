package immunization

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clinic/clinic/internal/platform/errs"
	"github.com/clinic/clinic/internal/platform/session"
)

type Service struct {
	vaccines VaccineRepository
}

func NewService(vaccines VaccineRepository) *Service {
	return &Service{vaccines: vaccines}
}

// AddVaccine records a vaccination for the patient in the session context.
func (s *Service) AddVaccine(ctx context.Context, sess session.Context, in *CreateVaccineInput) (*Vaccine, error) {
	if sess.Patient == nil {
		return nil, errs.MissingContext("patient")
	}
	patientID, err := uuid.Parse(sess.Patient.ID)
	if err != nil {
		return nil, errs.MissingContext("patient")
	}

	var fields []errs.FieldError
	name := strings.TrimSpace(in.Name)
	if len(name) < 2 || len(name) > 50 {
		fields = append(fields, errs.FieldError{Field: "name", Message: "must be between 2 and 50 characters"})
	}
	description := strings.TrimSpace(in.Description)
	if len(description) < 10 || len(description) > 500 {
		fields = append(fields, errs.FieldError{Field: "description", Message: "must be between 10 and 500 characters"})
	}
	date, dateErr := time.Parse("2006-01-02", in.Date)
	if dateErr != nil {
		fields = append(fields, errs.FieldError{Field: "date", Message: "must be an ISO date (YYYY-MM-DD)"})
	}
	if len(fields) > 0 {
		return nil, errs.Validation(fields...)
	}

	v := &Vaccine{
		PatientID:   patientID,
		Name:        name,
		Description: description,
		Date:        date,
	}
	if err := s.vaccines.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) GetVaccine(ctx context.Context, id uuid.UUID) (*Vaccine, error) {
	return s.vaccines.GetByID(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Vaccine, int, error) {
	return s.vaccines.ListByPatient(ctx, patientID, limit, offset)
}
