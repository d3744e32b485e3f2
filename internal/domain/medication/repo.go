package medication

import (
	"context"

	"github.com/google/uuid"
)

type MedicineRepository interface {
	Create(ctx context.Context, m *Medicine) error
	GetByID(ctx context.Context, id uuid.UUID) (*Medicine, error)
	List(ctx context.Context, limit, offset int) ([]*Medicine, int, error)
	ListCatalog(ctx context.Context) ([]*CatalogEntry, error)
	Update(ctx context.Context, m *Medicine) error
	Delete(ctx context.Context, id uuid.UUID) error
}
