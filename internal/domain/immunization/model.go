package immunization

import (
	"time"

	"github.com/google/uuid"
)

// Vaccine is one administered vaccination on a patient's record.
type Vaccine struct {
	ID          uuid.UUID `json:"id"`
	PatientID   uuid.UUID `json:"patient_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateVaccineInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"` // ISO date
}
