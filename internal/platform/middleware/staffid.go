package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// StaffIDHeader carries the caller's staff identifier on protected routes.
const StaffIDHeader = "X-Staff-ID"

const staffIDContextKey = "staff_id"

// RequireStaffID rejects requests that do not carry a staff identifier header.
// The header value is stored in the context but is NOT checked against the
// staff table; presence is the whole of the check.
func RequireStaffID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			staffID := c.Request().Header.Get(StaffIDHeader)
			if staffID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized: Staff ID required")
			}
			c.Set(staffIDContextKey, staffID)
			return next(c)
		}
	}
}

// StaffIDFromContext returns the staff identifier set by RequireStaffID, or ""
// when the request did not pass through the gate.
func StaffIDFromContext(c echo.Context) string {
	id, _ := c.Get(staffIDContextKey).(string)
	return id
}
