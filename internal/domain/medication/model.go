// Package medication is the clinic's medicine catalog. Billing looks unit
// prices up here; the catalog itself is maintained by the admin.
package medication

import (
	"time"

	"github.com/google/uuid"
)

type Medicine struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	UnitPrice   float64   `json:"unit_price"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CatalogEntry is the compact listing the billing UI renders in its
// medicine picker.
type CatalogEntry struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"medicinename"`
	UnitPrice float64   `json:"medicine_price"`
}

type CreateMedicineInput struct {
	Name        string  `json:"name"`
	UnitPrice   float64 `json:"unit_price"`
	Description string  `json:"description"`
}
