package clinical

import (
	"context"

	"github.com/google/uuid"
)

type AllergyRepository interface {
	Create(ctx context.Context, a *Allergy) error
	GetByID(ctx context.Context, id uuid.UUID) (*Allergy, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Allergy, int, error)
}
