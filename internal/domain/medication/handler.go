package medication

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/clinic/clinic/internal/platform/auth"
	"github.com/clinic/clinic/internal/platform/errs"
	"github.com/clinic/clinic/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	read := api.Group("", auth.RequireRole(auth.RoleDoctor, auth.RolePatient))
	read.GET("/medicines", h.ListMedicines)
	read.GET("/medicines/catalog", h.ListCatalog)
	read.GET("/medicines/:id", h.GetMedicine)

	write := api.Group("", auth.RequireRole(auth.RoleAdmin))
	write.POST("/medicines", h.CreateMedicine)
}

func (h *Handler) CreateMedicine(c echo.Context) error {
	var in CreateMedicineInput
	if err := c.Bind(&in); err != nil {
		return errs.Validationf("body", "invalid request body")
	}
	m, err := h.svc.CreateMedicine(c.Request().Context(), &in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *Handler) GetMedicine(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errs.Validationf("id", "must be a valid id")
	}
	m, err := h.svc.GetMedicine(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) ListMedicines(c echo.Context) error {
	pg := pagination.FromContext(c)
	medicines, total, err := h.svc.ListMedicines(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(medicines, total, pg.Limit, pg.Offset))
}

func (h *Handler) ListCatalog(c echo.Context) error {
	entries, err := h.svc.ListCatalog(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}
