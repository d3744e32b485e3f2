package prediction

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/clinic/clinic/internal/platform/auth"
	"github.com/clinic/clinic/internal/platform/errs"
)

type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("", auth.RequireRole(auth.RoleDoctor, auth.RolePatient))
	g.POST("/predictions/chat", h.Chat)
	g.POST("/predictions/progression", h.Progression)
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
}

func (h *Handler) Chat(c echo.Context) error {
	var in chatRequest
	if err := c.Bind(&in); err != nil {
		return errs.Validationf("body", "invalid request body")
	}
	if strings.TrimSpace(in.Message) == "" {
		return errs.Validationf("message", "is required")
	}

	reply, err := h.client.Chat(c.Request().Context(), in.Message)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, chatResponse{Response: reply})
}

type progressionRequest struct {
	PatientData string `json:"patient_data"`
}

type progressionResponse struct {
	PredictedDisease string `json:"predicted_disease"`
}

func (h *Handler) Progression(c echo.Context) error {
	var in progressionRequest
	if err := c.Bind(&in); err != nil {
		return errs.Validationf("body", "invalid request body")
	}
	if strings.TrimSpace(in.PatientData) == "" {
		return errs.Validationf("patient_data", "is required")
	}

	predicted, err := h.client.PredictProgression(c.Request().Context(), in.PatientData)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, progressionResponse{PredictedDisease: predicted})
}
