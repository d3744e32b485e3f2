package billing

import (
	"time"

	"github.com/google/uuid"
)

// Schedule marks the times of day a dose is taken. The number of doses per
// day is the count of enabled slots.
type Schedule struct {
	Morning   bool `json:"morning"`
	Afternoon bool `json:"afternoon"`
	Night     bool `json:"night"`
}

// DosesPerDay returns how many dose slots are enabled.
func (s Schedule) DosesPerDay() int {
	n := 0
	for _, on := range []bool{s.Morning, s.Afternoon, s.Night} {
		if on {
			n++
		}
	}
	return n
}

// Bill is one billed course of medication under a case. Patient, doctor and
// case references come from the session context at creation time, never from
// the request payload.
type Bill struct {
	ID         uuid.UUID `json:"id"`
	PatientID  uuid.UUID `json:"patient_id"`
	DoctorID   uuid.UUID `json:"doctor_id"`
	CaseID     uuid.UUID `json:"case_id"`
	MedicineID uuid.UUID `json:"medicine_id"`
	Quantity   int       `json:"quantity"`
	Schedule   Schedule  `json:"schedule"`
	FromDate   time.Time `json:"from_date"`
	ToDate     time.Time `json:"to_date"`
	Amount     float64   `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateBillInput is the payload for creating a bill. Total is the amount
// the client computed and displayed; the server recomputes and rejects a
// mismatch instead of trusting it.
type CreateBillInput struct {
	MedicineID string   `json:"medicine_id"`
	Quantity   int      `json:"quantity"`
	Schedule   Schedule `json:"schedule"`
	FromDate   string   `json:"from_date"` // ISO date
	ToDate     string   `json:"to_date"`   // ISO date
	Total      float64  `json:"total"`
}

// PreviewInput is CreateBillInput without the claimed total; the preview
// endpoint only computes, it never persists.
type PreviewInput struct {
	MedicineID string   `json:"medicine_id"`
	Quantity   int      `json:"quantity"`
	Schedule   Schedule `json:"schedule"`
	FromDate   string   `json:"from_date"`
	ToDate     string   `json:"to_date"`
}

// PreviewResult is the server-computed breakdown of a bill total.
type PreviewResult struct {
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	DosesPerDay int     `json:"doses_per_day"`
	Days        int     `json:"days"`
	Total       float64 `json:"total"`
}
