package errs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func renderError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bills", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	HTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func TestRenderValidationErrorList(t *testing.T) {
	rec := renderError(t, Validation(
		FieldError{Field: "quantity", Message: "must be between 1 and 100"},
	))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var body struct {
		Errors []FieldError `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Errors) != 1 || body.Errors[0].Field != "quantity" {
		t.Errorf("errors = %+v", body.Errors)
	}
}

func TestRenderMissingContext(t *testing.T) {
	rec := renderError(t, MissingContext("case"))
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}

	var body struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != string(KindMissingContext) {
		t.Errorf("code = %q", body.Code)
	}
}

func TestRenderEchoHTTPError(t *testing.T) {
	rec := renderError(t, echo.NewHTTPError(http.StatusNotFound, "no such route"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestRenderUnknownError(t *testing.T) {
	rec := renderError(t, context.DeadlineExceeded)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}
