// Package respond renders the uniform {success, data, error} envelope used by
// every endpoint, and provides the echo error handler that folds framework
// errors into the same shape.
package respond

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Envelope is the wire format shared by all responses.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Data writes a success envelope with the given payload.
func Data(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, Envelope{Success: true, Data: data})
}

// OK writes a success envelope with no payload.
func OK(c echo.Context, status int) error {
	return c.JSON(status, Envelope{Success: true})
}

// Error writes a failure envelope with the given message.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{Success: false, Error: message})
}

// ErrorHandler returns an echo HTTPErrorHandler that renders every error,
// including echo.HTTPError raised by handlers and the router, as a failure
// envelope. Unrecognized errors become a 500 with the error text passed
// through.
func ErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := err.Error()

		if he, ok := err.(*echo.HTTPError); ok {
			status = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			}
		}

		if writeErr := Error(c, status, message); writeErr != nil {
			logger.Error().Err(writeErr).Msg("failed to write error response")
		}
	}
}
