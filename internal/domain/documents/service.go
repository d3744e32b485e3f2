package documents

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/clinic/clinic/internal/domain/clinicalcase"
	"github.com/clinic/clinic/internal/platform/blobstore"
	"github.com/clinic/clinic/internal/platform/errs"
	"github.com/clinic/clinic/internal/platform/session"
)

// CaseLookup verifies the case a report attaches to actually exists.
type CaseLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*clinicalcase.Case, error)
}

type Service struct {
	reports ReportRepository
	cases   CaseLookup
	blobs   blobstore.Store
}

func NewService(reports ReportRepository, cases CaseLookup, blobs blobstore.Store) *Service {
	return &Service{reports: reports, cases: cases, blobs: blobs}
}

// UploadInput carries the multipart form fields of a report upload. The
// file content comes separately as a reader.
type UploadInput struct {
	CaseID      string
	Type        string
	Description string
	FileName    string
	ContentType string
}

// UploadReport stores the file and records the report against the case. The
// doctor comes from the session context; the case must already exist.
func (s *Service) UploadReport(ctx context.Context, sess session.Context, in *UploadInput, content io.Reader) (*Report, error) {
	if sess.Doctor == nil {
		return nil, errs.MissingContext("doctor")
	}
	doctorID, err := uuid.Parse(sess.Doctor.ID)
	if err != nil {
		return nil, errs.MissingContext("doctor")
	}

	var fields []errs.FieldError
	caseID, caseErr := uuid.Parse(in.CaseID)
	if caseErr != nil {
		fields = append(fields, errs.FieldError{Field: "case_id", Message: "must be a valid id"})
	}
	if !ReportTypes[in.Type] {
		fields = append(fields, errs.FieldError{Field: "type", Message: "must be one of lab, imaging, prescription, referral, other"})
	}
	if strings.TrimSpace(in.Description) == "" {
		fields = append(fields, errs.FieldError{Field: "description", Message: "is required"})
	}
	if len(fields) > 0 {
		return nil, errs.Validation(fields...)
	}

	if _, err := s.cases.GetByID(ctx, caseID); err != nil {
		return nil, err
	}

	blob, err := s.blobs.Put(ctx, in.FileName, in.ContentType, content)
	if err != nil {
		switch {
		case errors.Is(err, blobstore.ErrFileTooLarge):
			return nil, errs.Validationf("file", "exceeds the maximum allowed size")
		case errors.Is(err, blobstore.ErrInvalidContentType):
			return nil, errs.Validationf("file", "content type is not allowed")
		case errors.Is(err, blobstore.ErrMissingFileName):
			return nil, errs.Validationf("file", "is required")
		}
		return nil, err
	}

	rep := &Report{
		CaseID:      caseID,
		DoctorID:    doctorID,
		Type:        in.Type,
		Description: strings.TrimSpace(in.Description),
		FileKey:     blob.Key,
		FileName:    blob.FileName,
		ContentType: blob.ContentType,
		Size:        blob.Size,
	}
	if err := s.reports.Create(ctx, rep); err != nil {
		// The blob is orphaned if the metadata insert fails; remove it.
		_ = s.blobs.Delete(ctx, blob.Key)
		return nil, err
	}
	return rep, nil
}

func (s *Service) GetReport(ctx context.Context, id uuid.UUID) (*Report, error) {
	return s.reports.GetByID(ctx, id)
}

// OpenReportFile returns the report metadata and a reader over its content.
// The caller must close the reader.
func (s *Service) OpenReportFile(ctx context.Context, id uuid.UUID) (*Report, io.ReadCloser, error) {
	rep, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	content, _, err := s.blobs.Get(ctx, rep.FileKey)
	if errors.Is(err, blobstore.ErrBlobNotFound) {
		return nil, nil, errs.NotFound("report file")
	}
	if err != nil {
		return nil, nil, err
	}
	return rep, content, nil
}

func (s *Service) ListByCase(ctx context.Context, caseID uuid.UUID, limit, offset int) ([]*Report, int, error) {
	return s.reports.ListByCase(ctx, caseID, limit, offset)
}

// DeleteReport removes the metadata row and then the stored file.
func (s *Service) DeleteReport(ctx context.Context, id uuid.UUID) error {
	rep, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.reports.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.blobs.Delete(ctx, rep.FileKey); err != nil && !errors.Is(err, blobstore.ErrBlobNotFound) {
		return err
	}
	return nil
}
