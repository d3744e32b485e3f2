package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/clinic/clinic/internal/platform/errs"
)

func TestHandlerCreateHospital(t *testing.T) {
	h := NewHandler(newTestService())
	e := echo.New()

	body := `{"name":"City Hospital","mobile":"9876543210","address":"MG Road"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hospitals", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateHospital(c); err != nil {
		t.Fatalf("CreateHospital: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var hospital Hospital
	if err := json.Unmarshal(rec.Body.Bytes(), &hospital); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if hospital.Address != "MG Road" {
		t.Errorf("address = %q", hospital.Address)
	}
}

func TestHandlerCreateHospitalInvalid(t *testing.T) {
	h := NewHandler(newTestService())
	e := echo.New()

	body := `{"name":"x","mobile":"1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hospitals", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	if err := h.CreateHospital(c); !errs.IsKind(err, errs.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestHandlerAdminLogin(t *testing.T) {
	svc := newTestService()
	if err := svc.EnsureAdmin(context.Background(), "admin", "letmein-please"); err != nil {
		t.Fatalf("EnsureAdmin: %v", err)
	}
	h := NewHandler(svc)
	e := echo.New()

	body := `{"username":"admin","password":"letmein-please"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	var result LoginResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Token == "" {
		t.Error("expected token")
	}
}
