package admin

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
	api.POST("/admin/login", h.Login)

	hospitals := api.Group("", auth.RequireRole(auth.RoleDoctor))
	hospitals.GET("/hospitals", h.ListHospitals)
	hospitals.GET("/hospitals/:id", h.GetHospital)

	adminOnly := api.Group("", auth.RequireRole(auth.RoleAdmin))
	adminOnly.POST("/hospitals", h.CreateHospital)
}

func (h *Handler) Login(c echo.Context) error {
	var in struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&in); err != nil {
		return errs.Validationf("body", "invalid request body")
	}
	result, err := h.svc.Login(c.Request().Context(), in.Username, in.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) CreateHospital(c echo.Context) error {
	var in CreateHospitalInput
	if err := c.Bind(&in); err != nil {
		return errs.Validationf("body", "invalid request body")
	}
	hospital, err := h.svc.CreateHospital(c.Request().Context(), &in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, hospital)
}

func (h *Handler) GetHospital(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errs.Validationf("id", "must be a valid id")
	}
	hospital, err := h.svc.GetHospital(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hospital)
}

func (h *Handler) ListHospitals(c echo.Context) error {
	pg := pagination.FromContext(c)
	hospitals, total, err := h.svc.ListHospitals(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(hospitals, total, pg.Limit, pg.Offset))
}
