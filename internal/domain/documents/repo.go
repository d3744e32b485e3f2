package documents

import (
	"context"

	"github.com/google/uuid"
)

type ReportRepository interface {
	Create(ctx context.Context, r *Report) error
	GetByID(ctx context.Context, id uuid.UUID) (*Report, error)
	ListByCase(ctx context.Context, caseID uuid.UUID, limit, offset int) ([]*Report, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
