// Package session carries the per-request clinical working context: the
// doctor and patient selected earlier in the visit and, once a case has
// been opened, the active case. The context is an immutable value parsed
// from request headers; downstream services receive it explicitly instead
// of reading shared state.
package session

import (
	"encoding/json"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	HeaderDoctor  = "X-Doctor-Session"
	HeaderPatient = "X-Patient-Session"
	HeaderCase    = "X-Case-Session"
)

// ActiveDoctor identifies the doctor conducting the visit.
type ActiveDoctor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ActivePatient identifies the patient under consultation.
type ActivePatient struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ActiveCase is the published projection of a created case. It carries only
// the fields bill creation needs, not the full case record.
type ActiveCase struct {
	ID      string    `json:"id"`
	Disease string    `json:"disease"`
	Date    time.Time `json:"date"`
}

// Context is the working context for one request. A nil slot means that
// stage of the visit has not happened yet.
type Context struct {
	Doctor  *ActiveDoctor
	Patient *ActivePatient
	Case    *ActiveCase
}

const contextKey = "clinic.session"

// Middleware parses the session headers into a Context and stashes it on the
// echo context. A missing or malformed header leaves the slot nil; whether a
// nil slot is an error is for the operation to decide.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := Parse(
				c.Request().Header.Get(HeaderDoctor),
				c.Request().Header.Get(HeaderPatient),
				c.Request().Header.Get(HeaderCase),
			)
			c.Set(contextKey, sess)
			return next(c)
		}
	}
}

// Parse builds a Context from the raw header values.
func Parse(doctorJSON, patientJSON, caseJSON string) Context {
	var sess Context
	if doctorJSON != "" {
		var d ActiveDoctor
		if err := json.Unmarshal([]byte(doctorJSON), &d); err == nil && d.ID != "" {
			sess.Doctor = &d
		}
	}
	if patientJSON != "" {
		var p ActivePatient
		if err := json.Unmarshal([]byte(patientJSON), &p); err == nil && p.ID != "" {
			sess.Patient = &p
		}
	}
	if caseJSON != "" {
		var cs ActiveCase
		if err := json.Unmarshal([]byte(caseJSON), &cs); err == nil && cs.ID != "" {
			sess.Case = &cs
		}
	}
	return sess
}

// FromEcho returns the Context parsed by Middleware, or the zero Context
// when the middleware did not run.
func FromEcho(c echo.Context) Context {
	if sess, ok := c.Get(contextKey).(Context); ok {
		return sess
	}
	return Context{}
}
