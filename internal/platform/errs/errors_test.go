package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindMissingContext, http.StatusConflict},
		{KindAmountMismatch, http.StatusBadRequest},
		{KindNotFound, http.StatusNotFound},
		{KindConflict, http.StatusConflict},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindTransient, http.StatusBadGateway},
		{KindInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		e := &Error{Kind: tc.kind, Message: "x"}
		if got := e.HTTPStatus(); got != tc.want {
			t.Errorf("%s: status = %d, want %d", tc.kind, got, tc.want)
		}
	}
}

func TestValidationFields(t *testing.T) {
	err := Validation(
		FieldError{Field: "disease", Message: "too short"},
		FieldError{Field: "date", Message: "in the future"},
	)
	if len(err.Fields) != 2 {
		t.Fatalf("fields = %d, want 2", len(err.Fields))
	}
	if err.Fields[0].Field != "disease" {
		t.Errorf("first field = %q", err.Fields[0].Field)
	}
}

func TestAsUnwrapsWrappedError(t *testing.T) {
	inner := NotFound("patient")
	wrapped := fmt.Errorf("service: %w", inner)

	got := As(wrapped)
	if got == nil {
		t.Fatal("As returned nil for wrapped app error")
	}
	if got.Kind != KindNotFound {
		t.Errorf("kind = %s, want %s", got.Kind, KindNotFound)
	}
	if As(errors.New("plain")) != nil {
		t.Error("As returned non-nil for plain error")
	}
}

func TestIsKind(t *testing.T) {
	err := MissingContext("patient")
	if !IsKind(err, KindMissingContext) {
		t.Error("IsKind(missing context) = false")
	}
	if IsKind(err, KindValidation) {
		t.Error("IsKind matched wrong kind")
	}
}

func TestAmountMismatchMessage(t *testing.T) {
	err := AmountMismatch(100, 120)
	want := "claimed total 100.00 does not match computed total 120.00"
	if err.Message != want {
		t.Errorf("message = %q, want %q", err.Message, want)
	}
}
