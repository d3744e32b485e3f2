package billing

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
	g.POST("/bills", h.CreateBill)
	g.POST("/bills/preview", h.PreviewBill)
	g.GET("/bills/:id", h.GetBill)
	g.GET("/cases/:id/bills", h.ListBillsByCase)
	g.GET("/patients/:id/bills", h.ListBillsByPatient)
}

func (h *Handler) CreateBill(c echo.Context) error {
	var in CreateBillInput
	if err := c.Bind(&in); err != nil {
		return errs.Validationf("body", "invalid request body")
	}

	b, err := h.svc.CreateBill(c.Request().Context(), session.FromEcho(c), &in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *Handler) PreviewBill(c echo.Context) error {
	var in PreviewInput
	if err := c.Bind(&in); err != nil {
		return errs.Validationf("body", "invalid request body")
	}

	result, err := h.svc.Preview(c.Request().Context(), &in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) GetBill(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errs.Validationf("id", "must be a valid id")
	}
	b, err := h.svc.GetBill(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) ListBillsByCase(c echo.Context) error {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errs.Validationf("id", "must be a valid id")
	}
	pg := pagination.FromContext(c)
	bills, total, err := h.svc.ListBillsByCase(c.Request().Context(), caseID, pg.Limit, pg.Offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(bills, total, pg.Limit, pg.Offset))
}

func (h *Handler) ListBillsByPatient(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errs.Validationf("id", "must be a valid id")
	}
	pg := pagination.FromContext(c)
	bills, total, err := h.svc.ListBillsByPatient(c.Request().Context(), patientID, pg.Limit, pg.Offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(bills, total, pg.Limit, pg.Offset))
}
