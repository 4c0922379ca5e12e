package image

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ims/ims/internal/platform/filestore"
	"github.com/ims/ims/internal/platform/middleware"
	"github.com/ims/ims/internal/platform/respond"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/images/upload", h.Upload)
	api.GET("/images/patient/:id", h.ListByPatient)
	api.GET("/images/:id", h.Get)
	api.PUT("/images/:id/classify", h.Reclassify)
	api.DELETE("/images/:id", h.Delete)
}

func (h *Handler) Upload(c echo.Context) error {
	patientID, err := uuid.Parse(c.FormValue("patientID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patientID")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No file uploaded")
	}
	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	defer src.Close()

	uploadedBy := middleware.StaffIDFromContext(c)
	if uploadedBy == "" {
		uploadedBy = c.FormValue("uploadedBy")
	}

	img, err := h.svc.Upload(c.Request().Context(), UploadInput{
		PatientID:  patientID,
		UploadedBy: uploadedBy,
		Type:       c.FormValue("type"),
		Disease:    c.FormValue("diseaseClassification"),
		FileName:   fh.Filename,
		Content:    src,
	})
	if err != nil {
		switch {
		case errors.Is(err, filestore.ErrFileTooLarge),
			errors.Is(err, filestore.ErrInvalidExtension),
			errors.Is(err, filestore.ErrMissingFileName):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return respond.Data(c, http.StatusCreated, img)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	img, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Image not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return respond.Data(c, http.StatusOK, img)
}

func (h *Handler) ListByPatient(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	items, err := h.svc.ListByPatient(c.Request().Context(), patientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*MedicalImage{}
	}
	return respond.Data(c, http.StatusOK, items)
}

func (h *Handler) Reclassify(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var body struct {
		Type                  string `json:"type"`
		DiseaseClassification string `json:"diseaseClassification"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if body.Type == "" || body.DiseaseClassification == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Type and disease classification are required")
	}
	img, err := h.svc.Reclassify(c.Request().Context(), id, body.Type, body.DiseaseClassification)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Image not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return respond.Data(c, http.StatusOK, img)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return respond.OK(c, http.StatusOK)
}
