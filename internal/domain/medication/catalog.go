package medication

import (
	"context"

	"github.com/google/uuid"
)

// Catalog is the price lookup the billing engine depends on. It is satisfied
// by *Service so billing never sees repositories directly.
type Catalog interface {
	UnitPrice(ctx context.Context, id uuid.UUID) (float64, error)
}
