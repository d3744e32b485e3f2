package clinical

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
	g.POST("/allergies", h.AddAllergy)
	g.GET("/allergies/:id", h.GetAllergy)
	g.GET("/patients/:id/allergies", h.ListByPatient)
}

func (h *Handler) AddAllergy(c echo.Context) error {
	var in CreateAllergyInput
	if err := c.Bind(&in); err != nil {
		return errs.Validationf("body", "invalid request body")
	}

	a, err := h.svc.AddAllergy(c.Request().Context(), session.FromEcho(c), &in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) GetAllergy(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errs.Validationf("id", "must be a valid id")
	}
	a, err := h.svc.GetAllergy(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) ListByPatient(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errs.Validationf("id", "must be a valid id")
	}
	pg := pagination.FromContext(c)
	allergies, total, err := h.svc.ListByPatient(c.Request().Context(), patientID, pg.Limit, pg.Offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(allergies, total, pg.Limit, pg.Offset))
}
