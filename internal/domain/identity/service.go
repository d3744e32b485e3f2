package identity

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/clinic/clinic/internal/platform/auth"
	"github.com/clinic/clinic/internal/platform/errs"
)

var (
	mobilePattern     = regexp.MustCompile(`^\d{10}$`)
	nationalIDPattern = regexp.MustCompile(`^\d{12}$`)
)

var validGenders = map[string]bool{
	"": true, "male": true, "female": true, "other": true,
}

type Service struct {
	patients PatientRepository
	doctors  DoctorRepository
	tokens   *auth.TokenIssuer
}

func NewService(patients PatientRepository, doctors DoctorRepository, tokens *auth.TokenIssuer) *Service {
	return &Service{patients: patients, doctors: doctors, tokens: tokens}
}

// -- Patients --

func validateRegisterPatient(in *RegisterPatientInput) []errs.FieldError {
	var fields []errs.FieldError
	if len(strings.TrimSpace(in.Name)) < 3 {
		fields = append(fields, errs.FieldError{Field: "name", Message: "must be at least 3 characters"})
	}
	if !mobilePattern.MatchString(in.Mobile) {
		fields = append(fields, errs.FieldError{Field: "mobile", Message: "must be exactly 10 digits"})
	}
	if !nationalIDPattern.MatchString(in.NationalID) {
		fields = append(fields, errs.FieldError{Field: "national_id", Message: "must be exactly 12 digits"})
	}
	if len(in.Password) < 8 {
		fields = append(fields, errs.FieldError{Field: "password", Message: "must be at least 8 characters"})
	}
	if !validGenders[in.Gender] {
		fields = append(fields, errs.FieldError{Field: "gender", Message: "must be male, female, or other"})
	}
	return fields
}

func (s *Service) RegisterPatient(ctx context.Context, in *RegisterPatientInput) (*Patient, error) {
	fields := validateRegisterPatient(in)

	var dob *time.Time
	if in.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", in.DateOfBirth)
		if err != nil {
			fields = append(fields, errs.FieldError{Field: "date_of_birth", Message: "must be an ISO date (YYYY-MM-DD)"})
		} else {
			dob = &parsed
		}
	}
	if len(fields) > 0 {
		return nil, errs.Validation(fields...)
	}

	taken, err := s.patients.ExistsNationalID(ctx, in.NationalID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.Conflict("a patient with this national id is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.Internal("hash password", err)
	}

	p := &Patient{
		Name:         strings.TrimSpace(in.Name),
		Mobile:       in.Mobile,
		NationalID:   in.NationalID,
		Email:        strings.TrimSpace(in.Email),
		Address:      strings.TrimSpace(in.Address),
		DateOfBirth:  dob,
		Gender:       in.Gender,
		PasswordHash: string(hash),
	}
	if err := s.patients.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// LoginPatient authenticates by national id and issues a session token.
func (s *Service) LoginPatient(ctx context.Context, nationalID, password string) (*LoginResult, error) {
	p, err := s.patients.GetByNationalID(ctx, nationalID)
	if err != nil {
		if errs.IsKind(err, errs.KindNotFound) {
			return nil, errs.Unauthorized("invalid credentials")
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)) != nil {
		return nil, errs.Unauthorized("invalid credentials")
	}

	token, err := s.tokens.Issue(p.ID.String(), auth.RolePatient, p.Name)
	if err != nil {
		return nil, errs.Internal("issue token", err)
	}
	return &LoginResult{Token: token, Role: auth.RolePatient, Profile: p}, nil
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.patients.List(ctx, limit, offset)
}

// NationalIDAvailable reports whether the national id is free to register.
func (s *Service) NationalIDAvailable(ctx context.Context, nationalID string) (bool, error) {
	if !nationalIDPattern.MatchString(nationalID) {
		return false, errs.Validationf("national_id", "must be exactly 12 digits")
	}
	taken, err := s.patients.ExistsNationalID(ctx, nationalID)
	return !taken, err
}

// -- Doctors --

func validateRegisterDoctor(in *RegisterDoctorInput) []errs.FieldError {
	var fields []errs.FieldError
	if len(strings.TrimSpace(in.Name)) < 3 {
		fields = append(fields, errs.FieldError{Field: "name", Message: "must be at least 3 characters"})
	}
	if strings.TrimSpace(in.Specialty) == "" {
		fields = append(fields, errs.FieldError{Field: "specialty", Message: "is required"})
	}
	if !mobilePattern.MatchString(in.Mobile) {
		fields = append(fields, errs.FieldError{Field: "mobile", Message: "must be exactly 10 digits"})
	}
	if len(in.Password) < 8 {
		fields = append(fields, errs.FieldError{Field: "password", Message: "must be at least 8 characters"})
	}
	return fields
}

func (s *Service) RegisterDoctor(ctx context.Context, in *RegisterDoctorInput) (*Doctor, error) {
	fields := validateRegisterDoctor(in)

	var hospitalID *uuid.UUID
	if in.HospitalID != "" {
		parsed, err := uuid.Parse(in.HospitalID)
		if err != nil {
			fields = append(fields, errs.FieldError{Field: "hospital_id", Message: "must be a valid id"})
		} else {
			hospitalID = &parsed
		}
	}
	if len(fields) > 0 {
		return nil, errs.Validation(fields...)
	}

	taken, err := s.doctors.ExistsMobile(ctx, in.Mobile)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.Conflict("a doctor with this mobile number is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.Internal("hash password", err)
	}

	d := &Doctor{
		Name:         strings.TrimSpace(in.Name),
		Specialty:    strings.TrimSpace(in.Specialty),
		Mobile:       in.Mobile,
		Email:        strings.TrimSpace(in.Email),
		Address:      strings.TrimSpace(in.Address),
		HospitalID:   hospitalID,
		PasswordHash: string(hash),
	}
	if err := s.doctors.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// LoginDoctor authenticates by mobile number and issues a session token.
func (s *Service) LoginDoctor(ctx context.Context, mobile, password string) (*LoginResult, error) {
	d, err := s.doctors.GetByMobile(ctx, mobile)
	if err != nil {
		if errs.IsKind(err, errs.KindNotFound) {
			return nil, errs.Unauthorized("invalid credentials")
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(d.PasswordHash), []byte(password)) != nil {
		return nil, errs.Unauthorized("invalid credentials")
	}

	token, err := s.tokens.Issue(d.ID.String(), auth.RoleDoctor, d.Name)
	if err != nil {
		return nil, errs.Internal("issue token", err)
	}
	return &LoginResult{Token: token, Role: auth.RoleDoctor, Profile: d}, nil
}

func (s *Service) GetDoctor(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}

func (s *Service) ListDoctors(ctx context.Context, limit, offset int) ([]*Doctor, int, error) {
	return s.doctors.List(ctx, limit, offset)
}

// MobileAvailable reports whether the mobile number is free for a doctor.
func (s *Service) MobileAvailable(ctx context.Context, mobile string) (bool, error) {
	if !mobilePattern.MatchString(mobile) {
		return false, errs.Validationf("mobile", "must be exactly 10 digits")
	}
	taken, err := s.doctors.ExistsMobile(ctx, mobile)
	return !taken, err
}
