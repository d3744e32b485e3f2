package clinicalcase

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/clinic/clinic/internal/platform/auth"
	"github.com/clinic/clinic/internal/platform/errs"
	"github.com/clinic/clinic/internal/platform/session"
	"github.com/clinic/clinic/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("", auth.RequireRole(auth.RoleDoctor))
	g.POST("/cases", h.CreateCase)
	g.GET("/cases", h.ListCases)
	g.GET("/cases/:id", h.GetCase)
	g.GET("/patients/:id/cases", h.ListCasesByPatient)
}

// createCaseResponse returns both the stored record and the active-case
// projection the client must adopt as its new case session.
type createCaseResponse struct {
	Case       *Case              `json:"case"`
	ActiveCase session.ActiveCase `json:"active_case"`
}

func (h *Handler) CreateCase(c echo.Context) error {
	var in CreateCaseInput
	if err := c.Bind(&in); err != nil {
		return errs.Validationf("body", "invalid request body")
	}

	created, active, err := h.svc.CreateCase(c.Request().Context(), session.FromEcho(c), &in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createCaseResponse{Case: created, ActiveCase: active})
}

func (h *Handler) GetCase(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errs.Validationf("id", "must be a valid id")
	}
	record, err := h.svc.GetCase(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

func (h *Handler) ListCases(c echo.Context) error {
	pg := pagination.FromContext(c)
	cases, total, err := h.svc.ListCases(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(cases, total, pg.Limit, pg.Offset))
}

func (h *Handler) ListCasesByPatient(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errs.Validationf("id", "must be a valid id")
	}
	pg := pagination.FromContext(c)
	cases, total, err := h.svc.ListCasesByPatient(c.Request().Context(), patientID, pg.Limit, pg.Offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(cases, total, pg.Limit, pg.Offset))
}
