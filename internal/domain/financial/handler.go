package financial

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ims/ims/internal/platform/respond"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/financial/task", h.RecordTask)
	api.GET("/financial/cost/:id", h.GetTotalCost)
	api.GET("/financial/report/:id", h.GetCostReport)
}

func (h *Handler) RecordTask(c echo.Context) error {
	var in RecordTaskInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if in.PatientID == uuid.Nil || in.Description == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Patient ID, description and cost are required")
	}
	t, err := h.svc.RecordTask(c.Request().Context(), in)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return respond.Data(c, http.StatusCreated, t)
}

func (h *Handler) GetTotalCost(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	total, err := h.svc.CalculateTotalCost(c.Request().Context(), patientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return respond.Data(c, http.StatusOK, map[string]interface{}{
		"patientID": patientID,
		"totalCost": total,
	})
}

func (h *Handler) GetCostReport(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	report, err := h.svc.GenerateCostReport(c.Request().Context(), patientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return respond.Data(c, http.StatusOK, report)
}
