package documents

import (
	"time"

	"github.com/google/uuid"
)

// Report is a file attached to a case: a scan, a lab result, a referral
// letter. The metadata lives in Postgres; the file bytes live in the blob
// store under FileKey.
type Report struct {
	ID          uuid.UUID `json:"id"`
	CaseID      uuid.UUID `json:"case_id"`
	DoctorID    uuid.UUID `json:"doctor_id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	FileKey     string    `json:"-"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReportTypes are the accepted values for a report's type field.
var ReportTypes = map[string]bool{
	"lab":          true,
	"imaging":      true,
	"prescription": true,
	"referral":     true,
	"other":        true,
}
