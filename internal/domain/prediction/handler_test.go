package prediction

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clinic/clinic/internal/platform/errs"
)

func TestHandlerChat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"response": "drink fluids and rest"})
	}))
	defer srv.Close()

	h := NewHandler(NewClient(srv.URL, time.Second))
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/predictions/chat", strings.NewReader(`{"message":"I have a fever"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Chat(c); err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp chatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Response != "drink fluids and rest" {
		t.Errorf("response = %q", resp.Response)
	}
}

func TestHandlerChatEmptyMessage(t *testing.T) {
	h := NewHandler(NewClient("http://127.0.0.1:0", time.Second))
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/predictions/chat", strings.NewReader(`{"message":"  "}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	if err := h.Chat(c); !errs.IsKind(err, errs.KindValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestHandlerProgression(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"predicted_disease": "type 2 diabetes"})
	}))
	defer srv.Close()

	h := NewHandler(NewClient(srv.URL, time.Second))
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/predictions/progression", strings.NewReader(`{"patient_data":"female, 48, fasting glucose 130"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Progression(c); err != nil {
		t.Fatalf("Progression: %v", err)
	}

	var resp progressionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.PredictedDisease != "type 2 diabetes" {
		t.Errorf("predicted = %q", resp.PredictedDisease)
	}
}
