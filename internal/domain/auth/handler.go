package auth

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ims/ims/internal/platform/respond"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the login endpoint on the public group; login is the
// only route that does not require the staff id header.
func (h *Handler) RegisterRoutes(public *echo.Group) {
	public.POST("/auth/login", h.Login)
}

func (h *Handler) Login(c echo.Context) error {
	var body struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	identity, err := h.svc.Login(c.Request().Context(), body.ID, body.Name)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingCredential):
			return echo.NewHTTPError(http.StatusBadRequest, "ID or name is required")
		case errors.Is(err, ErrInvalidCredential):
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return respond.Data(c, http.StatusOK, identity)
}
