package documents

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
	g.POST("/reports", h.UploadReport)
	g.GET("/reports/:id", h.GetReport)
	g.GET("/reports/:id/file", h.DownloadReport)
	g.GET("/cases/:id/reports", h.ListByCase)
	g.DELETE("/reports/:id", h.DeleteReport)
}

func (h *Handler) UploadReport(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return errs.Validationf("file", "is required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return errs.Validationf("file", "could not be read")
	}
	defer file.Close()

	in := &UploadInput{
		CaseID:      c.FormValue("case_id"),
		Type:        c.FormValue("type"),
		Description: c.FormValue("description"),
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
	}

	rep, err := h.svc.UploadReport(c.Request().Context(), session.FromEcho(c), in, file)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, rep)
}

func (h *Handler) GetReport(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errs.Validationf("id", "must be a valid id")
	}
	rep, err := h.svc.GetReport(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rep)
}

func (h *Handler) DownloadReport(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errs.Validationf("id", "must be a valid id")
	}
	rep, content, err := h.svc.OpenReportFile(c.Request().Context(), id)
	if err != nil {
		return err
	}
	defer content.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+rep.FileName+`"`)
	return c.Stream(http.StatusOK, rep.ContentType, content)
}

func (h *Handler) ListByCase(c echo.Context) error {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errs.Validationf("id", "must be a valid id")
	}
	pg := pagination.FromContext(c)
	reports, total, err := h.svc.ListByCase(c.Request().Context(), caseID, pg.Limit, pg.Offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(reports, total, pg.Limit, pg.Offset))
}

func (h *Handler) DeleteReport(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errs.Validationf("id", "must be a valid id")
	}
	if err := h.svc.DeleteReport(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
