// Package clinicalcase manages consultation cases. Opening a case is the
// pivot of a visit: the patient and doctor come from the session context,
// and the created case becomes the active case later consumed by billing
// and report uploads.
package clinicalcase

import (
	"time"

	"github.com/google/uuid"
)

type Case struct {
	ID          uuid.UUID `json:"id"`
	PatientID   uuid.UUID `json:"patient_id"`
	DoctorID    uuid.UUID `json:"doctor_id"`
	Disease     string    `json:"disease"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateCaseInput struct {
	Disease     string `json:"disease"`
	Description string `json:"description"`
	Date        string `json:"date"` // ISO date, YYYY-MM-DD
}
