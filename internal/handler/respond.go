package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "tryon/internal/errors"
)

// respondError maps a domain error onto the shared JSON error shape. The
// underlying cause of a 5xx is logged here and never leaves the process.
func respondError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Path(), err)
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
