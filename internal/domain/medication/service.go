package medication

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/clinic/clinic/internal/platform/errs"
)

type Service struct {
	medicines MedicineRepository
}

func NewService(medicines MedicineRepository) *Service {
	return &Service{medicines: medicines}
}

func (s *Service) CreateMedicine(ctx context.Context, in *CreateMedicineInput) (*Medicine, error) {
	var fields []errs.FieldError
	if len(strings.TrimSpace(in.Name)) < 3 {
		fields = append(fields, errs.FieldError{Field: "name", Message: "must be at least 3 characters"})
	}
	if in.UnitPrice < 0 {
		fields = append(fields, errs.FieldError{Field: "unit_price", Message: "must not be negative"})
	}
	if len(strings.TrimSpace(in.Description)) < 10 {
		fields = append(fields, errs.FieldError{Field: "description", Message: "must be at least 10 characters"})
	}
	if len(fields) > 0 {
		return nil, errs.Validation(fields...)
	}

	m := &Medicine{
		Name:        strings.TrimSpace(in.Name),
		UnitPrice:   in.UnitPrice,
		Description: strings.TrimSpace(in.Description),
	}
	if err := s.medicines.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) GetMedicine(ctx context.Context, id uuid.UUID) (*Medicine, error) {
	return s.medicines.GetByID(ctx, id)
}

func (s *Service) ListMedicines(ctx context.Context, limit, offset int) ([]*Medicine, int, error) {
	return s.medicines.List(ctx, limit, offset)
}

// ListCatalog returns the full ordered catalog snapshot for pickers.
func (s *Service) ListCatalog(ctx context.Context) ([]*CatalogEntry, error) {
	return s.medicines.ListCatalog(ctx)
}

// UnitPrice implements the Catalog lookup used by billing.
func (s *Service) UnitPrice(ctx context.Context, id uuid.UUID) (float64, error) {
	m, err := s.medicines.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return m.UnitPrice, nil
}
