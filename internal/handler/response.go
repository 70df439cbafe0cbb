package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "taskboard/internal/errors"
)

// Every response carries the {status, message?, <entity>} envelope.

func fail(c echo.Context, code int, message string) error {
	return c.JSON(code, echo.Map{
		"status":  "error",
		"message": message,
	})
}

// serviceError maps a service-layer error to its HTTP status. Unanticipated
// errors become a 500 with the message passed through.
func serviceError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return fail(c, httpErr.StatusCode, httpErr.Message)
}

// paramID parses a numeric path parameter.
func paramID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}
