package admin

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/clinic/clinic/internal/platform/auth"
	"github.com/clinic/clinic/internal/platform/errs"
)

var mobilePattern = regexp.MustCompile(`^\d{10}$`)

type Service struct {
	hospitals HospitalRepository
	admins    AdminRepository
	tokens    *auth.TokenIssuer
}

func NewService(hospitals HospitalRepository, admins AdminRepository, tokens *auth.TokenIssuer) *Service {
	return &Service{hospitals: hospitals, admins: admins, tokens: tokens}
}

func (s *Service) CreateHospital(ctx context.Context, in *CreateHospitalInput) (*Hospital, error) {
	var fields []errs.FieldError
	if len(strings.TrimSpace(in.Name)) < 3 {
		fields = append(fields, errs.FieldError{Field: "name", Message: "must be at least 3 characters"})
	}
	if !mobilePattern.MatchString(in.Mobile) {
		fields = append(fields, errs.FieldError{Field: "mobile", Message: "must be exactly 10 digits"})
	}
	if len(fields) > 0 {
		return nil, errs.Validation(fields...)
	}

	h := &Hospital{
		Name:    strings.TrimSpace(in.Name),
		Mobile:  in.Mobile,
		Email:   strings.TrimSpace(in.Email),
		Address: strings.TrimSpace(in.Address),
	}
	if err := s.hospitals.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *Service) GetHospital(ctx context.Context, id uuid.UUID) (*Hospital, error) {
	return s.hospitals.GetByID(ctx, id)
}

func (s *Service) ListHospitals(ctx context.Context, limit, offset int) ([]*Hospital, int, error) {
	return s.hospitals.List(ctx, limit, offset)
}

// Login authenticates the admin account and issues a session token.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	a, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		if errs.IsKind(err, errs.KindNotFound) {
			return nil, errs.Unauthorized("invalid credentials")
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return nil, errs.Unauthorized("invalid credentials")
	}

	token, err := s.tokens.Issue(a.ID.String(), auth.RoleAdmin, a.Username)
	if err != nil {
		return nil, errs.Internal("issue token", err)
	}
	return &LoginResult{Token: token, Role: auth.RoleAdmin}, nil
}

// EnsureAdmin creates the admin account if it does not already exist. Run at
// startup so a fresh database has a usable login.
func (s *Service) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}
	if _, err := s.admins.GetByUsername(ctx, username); err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errs.Internal("hash admin password", err)
	}
	return s.admins.Create(ctx, &Admin{Username: username, PasswordHash: string(hash)})
}
