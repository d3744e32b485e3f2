package immunization

import (
	"context"

	"github.com/google/uuid"
)

type VaccineRepository interface {
	Create(ctx context.Context, v *Vaccine) error
	GetByID(ctx context.Context, id uuid.UUID) (*Vaccine, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Vaccine, int, error)
}
