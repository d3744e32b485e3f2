package admin

import (
	"context"

	"github.com/google/uuid"
)

type HospitalRepository interface {
	Create(ctx context.Context, h *Hospital) error
	GetByID(ctx context.Context, id uuid.UUID) (*Hospital, error)
	List(ctx context.Context, limit, offset int) ([]*Hospital, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*Admin, error)
	Create(ctx context.Context, a *Admin) error
}
