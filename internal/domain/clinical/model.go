package clinical

import (
	"time"

	"github.com/google/uuid"
)

// Allergy is a recorded allergy on a patient's chart.
type Allergy struct {
	ID          uuid.UUID `json:"id"`
	PatientID   uuid.UUID `json:"patient_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateAllergyInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
