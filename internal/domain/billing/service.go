package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/clinic/clinic/internal/domain/medication"
	"github.com/clinic/clinic/internal/platform/errs"
	"github.com/clinic/clinic/internal/platform/session"
)

const (
	minQuantity = 1
	maxQuantity = 100
)

type Service struct {
	bills   BillRepository
	catalog medication.Catalog
}

func NewService(bills BillRepository, catalog medication.Catalog) *Service {
	return &Service{bills: bills, catalog: catalog}
}

// billParams is a validated, resolved bill request.
type billParams struct {
	medicineID uuid.UUID
	quantity   int
	schedule   Schedule
	from       time.Time
	to         time.Time
}

func validateParams(medicineID string, quantity int, schedule Schedule, fromDate, toDate string) (*billParams, error) {
	var fields []errs.FieldError

	mid, err := uuid.Parse(medicineID)
	if err != nil {
		fields = append(fields, errs.FieldError{Field: "medicine_id", Message: "must be a valid id"})
	}
	if quantity < minQuantity || quantity > maxQuantity {
		fields = append(fields, errs.FieldError{Field: "quantity", Message: "must be between 1 and 100"})
	}
	if schedule.DosesPerDay() == 0 {
		fields = append(fields, errs.FieldError{Field: "schedule", Message: "at least one dose time must be selected"})
	}

	from, fromErr := time.Parse("2006-01-02", fromDate)
	if fromErr != nil {
		fields = append(fields, errs.FieldError{Field: "from_date", Message: "must be an ISO date (YYYY-MM-DD)"})
	}
	to, toErr := time.Parse("2006-01-02", toDate)
	if toErr != nil {
		fields = append(fields, errs.FieldError{Field: "to_date", Message: "must be an ISO date (YYYY-MM-DD)"})
	}
	if fromErr == nil && toErr == nil && to.Before(from) {
		fields = append(fields, errs.FieldError{Field: "to_date", Message: "must not be before from_date"})
	}

	if len(fields) > 0 {
		return nil, errs.Validation(fields...)
	}
	return &billParams{medicineID: mid, quantity: quantity, schedule: schedule, from: from, to: to}, nil
}

// CreateBill validates the request against the session context, recomputes
// the total from the catalog price and rejects the claim if it disagrees,
// then persists the bill. Repeated identical submissions each create a
// separate bill.
func (s *Service) CreateBill(ctx context.Context, sess session.Context, in *CreateBillInput) (*Bill, error) {
	patientID, doctorID, caseID, err := requireSession(sess)
	if err != nil {
		return nil, err
	}

	p, err := validateParams(in.MedicineID, in.Quantity, in.Schedule, in.FromDate, in.ToDate)
	if err != nil {
		return nil, err
	}

	unitPrice, err := s.lookupPrice(ctx, p.medicineID)
	if err != nil {
		return nil, err
	}

	computed := Total(unitPrice, p.quantity, p.schedule, p.from, p.to)
	if !withinTolerance(in.Total, computed) {
		return nil, errs.AmountMismatch(in.Total, computed)
	}

	b := &Bill{
		PatientID:  patientID,
		DoctorID:   doctorID,
		CaseID:     caseID,
		MedicineID: p.medicineID,
		Quantity:   p.quantity,
		Schedule:   p.schedule,
		FromDate:   p.from,
		ToDate:     p.to,
		Amount:     computed,
	}
	if err := s.bills.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Preview computes the total a bill would come to without persisting
// anything. A medicine missing from the catalog previews at unit price 0;
// only CreateBill treats the miss as a bad request.
func (s *Service) Preview(ctx context.Context, in *PreviewInput) (*PreviewResult, error) {
	p, err := validateParams(in.MedicineID, in.Quantity, in.Schedule, in.FromDate, in.ToDate)
	if err != nil {
		return nil, err
	}

	unitPrice, err := s.catalog.UnitPrice(ctx, p.medicineID)
	if errs.IsKind(err, errs.KindNotFound) {
		unitPrice = 0
	} else if err != nil {
		return nil, err
	}

	return &PreviewResult{
		UnitPrice:   unitPrice,
		Quantity:    p.quantity,
		DosesPerDay: p.schedule.DosesPerDay(),
		Days:        DayCount(p.from, p.to),
		Total:       Total(unitPrice, p.quantity, p.schedule, p.from, p.to),
	}, nil
}

// lookupPrice resolves the unit price from the catalog; an unknown
// medicine is a bad request, not a missing resource.
func (s *Service) lookupPrice(ctx context.Context, medicineID uuid.UUID) (float64, error) {
	unitPrice, err := s.catalog.UnitPrice(ctx, medicineID)
	if errs.IsKind(err, errs.KindNotFound) {
		return 0, errs.Validationf("medicine_id", "is not in the catalog")
	}
	if err != nil {
		return 0, err
	}
	return unitPrice, nil
}

func (s *Service) GetBill(ctx context.Context, id uuid.UUID) (*Bill, error) {
	return s.bills.GetByID(ctx, id)
}

func (s *Service) ListBillsByCase(ctx context.Context, caseID uuid.UUID, limit, offset int) ([]*Bill, int, error) {
	return s.bills.ListByCase(ctx, caseID, limit, offset)
}

func (s *Service) ListBillsByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Bill, int, error) {
	return s.bills.ListByPatient(ctx, patientID, limit, offset)
}

// requireSession checks that all three stages of the visit are present
// before anything touches storage.
func requireSession(sess session.Context) (patientID, doctorID, caseID uuid.UUID, err error) {
	if sess.Doctor == nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, errs.MissingContext("doctor")
	}
	if sess.Patient == nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, errs.MissingContext("patient")
	}
	if sess.Case == nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, errs.MissingContext("case")
	}
	doctorID, err = uuid.Parse(sess.Doctor.ID)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, errs.MissingContext("doctor")
	}
	patientID, err = uuid.Parse(sess.Patient.ID)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, errs.MissingContext("patient")
	}
	caseID, err = uuid.Parse(sess.Case.ID)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, errs.MissingContext("case")
	}
	return patientID, doctorID, caseID, nil
}
