package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestParseFullContext(t *testing.T) {
	sess := Parse(
		`{"id":"doc-1","name":"Dr. Rao"}`,
		`{"id":"pat-1","name":"Anita"}`,
		`{"id":"case-1","disease":"influenza","date":"2024-01-01T00:00:00Z"}`,
	)
	if sess.Doctor == nil || sess.Doctor.ID != "doc-1" {
		t.Errorf("doctor = %+v", sess.Doctor)
	}
	if sess.Patient == nil || sess.Patient.Name != "Anita" {
		t.Errorf("patient = %+v", sess.Patient)
	}
	if sess.Case == nil || sess.Case.Disease != "influenza" {
		t.Fatalf("case = %+v", sess.Case)
	}
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !sess.Case.Date.Equal(want) {
		t.Errorf("case date = %v, want %v", sess.Case.Date, want)
	}
}

func TestParseMalformedSlotIsNil(t *testing.T) {
	sess := Parse(`not json`, `{"id":""}`, "")
	if sess.Doctor != nil {
		t.Error("malformed doctor header should leave slot nil")
	}
	if sess.Patient != nil {
		t.Error("patient header without id should leave slot nil")
	}
	if sess.Case != nil {
		t.Error("absent case header should leave slot nil")
	}
}

func TestMiddlewareStashesContext(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderPatient, `{"id":"pat-9","name":"Ben"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Middleware()(func(c echo.Context) error {
		sess := FromEcho(c)
		if sess.Patient == nil || sess.Patient.ID != "pat-9" {
			t.Errorf("patient = %+v", sess.Patient)
		}
		if sess.Doctor != nil {
			t.Error("doctor slot should be nil")
		}
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("middleware: %v", err)
	}
}

func TestFromEchoWithoutMiddleware(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	sess := FromEcho(c)
	if sess.Doctor != nil || sess.Patient != nil || sess.Case != nil {
		t.Error("expected zero context")
	}
}

