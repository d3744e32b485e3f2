package identity

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
	// Public: logins and registration-time availability checks
	api.POST("/patients/login", h.LoginPatient)
	api.POST("/doctors/login", h.LoginDoctor)
	api.GET("/patients/check-national-id", h.CheckNationalID)
	api.GET("/doctors/check-mobile", h.CheckMobile)

	// Registration is an admin operation
	admin := api.Group("", auth.RequireRole(auth.RoleAdmin))
	admin.POST("/patients", h.RegisterPatient)
	admin.POST("/doctors", h.RegisterDoctor)

	// Reads for the doctor/admin dashboards
	read := api.Group("", auth.RequireRole(auth.RoleDoctor))
	read.GET("/patients", h.ListPatients)
	read.GET("/patients/:id", h.GetPatient)
	read.GET("/doctors", h.ListDoctors)
	read.GET("/doctors/:id", h.GetDoctor)
}

// -- Patients --

func (h *Handler) RegisterPatient(c echo.Context) error {
	var in RegisterPatientInput
	if err := c.Bind(&in); err != nil {
		return errs.Validationf("body", "invalid request body")
	}
	p, err := h.svc.RegisterPatient(c.Request().Context(), &in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, p)
}

type loginRequest struct {
	NationalID string `json:"national_id"`
	Mobile     string `json:"mobile"`
	Password   string `json:"password"`
}

func (h *Handler) LoginPatient(c echo.Context) error {
	var in loginRequest
	if err := c.Bind(&in); err != nil {
		return errs.Validationf("body", "invalid request body")
	}
	result, err := h.svc.LoginPatient(c.Request().Context(), in.NationalID, in.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) GetPatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errs.Validationf("id", "must be a valid id")
	}
	p, err := h.svc.GetPatient(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) ListPatients(c echo.Context) error {
	pg := pagination.FromContext(c)
	patients, total, err := h.svc.ListPatients(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(patients, total, pg.Limit, pg.Offset))
}

func (h *Handler) CheckNationalID(c echo.Context) error {
	available, err := h.svc.NationalIDAvailable(c.Request().Context(), c.QueryParam("national_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"available": available})
}

// -- Doctors --

func (h *Handler) RegisterDoctor(c echo.Context) error {
	var in RegisterDoctorInput
	if err := c.Bind(&in); err != nil {
		return errs.Validationf("body", "invalid request body")
	}
	d, err := h.svc.RegisterDoctor(c.Request().Context(), &in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *Handler) LoginDoctor(c echo.Context) error {
	var in loginRequest
	if err := c.Bind(&in); err != nil {
		return errs.Validationf("body", "invalid request body")
	}
	result, err := h.svc.LoginDoctor(c.Request().Context(), in.Mobile, in.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) GetDoctor(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errs.Validationf("id", "must be a valid id")
	}
	d, err := h.svc.GetDoctor(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) ListDoctors(c echo.Context) error {
	pg := pagination.FromContext(c)
	doctors, total, err := h.svc.ListDoctors(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(doctors, total, pg.Limit, pg.Offset))
}

func (h *Handler) CheckMobile(c echo.Context) error {
	available, err := h.svc.MobileAvailable(c.Request().Context(), c.QueryParam("mobile"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"available": available})
}
