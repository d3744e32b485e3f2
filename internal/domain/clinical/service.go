package clinical

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/clinic/clinic/internal/platform/errs"
	"github.com/clinic/clinic/internal/platform/session"
)

type Service struct {
	allergies AllergyRepository
}

func NewService(allergies AllergyRepository) *Service {
	return &Service{allergies: allergies}
}

// AddAllergy records an allergy for the patient in the session context.
func (s *Service) AddAllergy(ctx context.Context, sess session.Context, in *CreateAllergyInput) (*Allergy, error) {
	if sess.Patient == nil {
		return nil, errs.MissingContext("patient")
	}
	patientID, err := uuid.Parse(sess.Patient.ID)
	if err != nil {
		return nil, errs.MissingContext("patient")
	}

	var fields []errs.FieldError
	name := strings.TrimSpace(in.Name)
	if len(name) < 3 || len(name) > 50 {
		fields = append(fields, errs.FieldError{Field: "name", Message: "must be between 3 and 50 characters"})
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		fields = append(fields, errs.FieldError{Field: "description", Message: "is required"})
	}
	if len(fields) > 0 {
		return nil, errs.Validation(fields...)
	}

	a := &Allergy{
		PatientID:   patientID,
		Name:        name,
		Description: description,
	}
	if err := s.allergies.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) GetAllergy(ctx context.Context, id uuid.UUID) (*Allergy, error) {
	return s.allergies.GetByID(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Allergy, int, error) {
	return s.allergies.ListByPatient(ctx, patientID, limit, offset)
}
