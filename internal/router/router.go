package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	apperrors "tryon/internal/errors"
	"tryon/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	userHandler *handler.UserHandler,
	outfitHandler *handler.OutfitHandler,
	tryOnHandler *handler.TryOnHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(allowOrigin)

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = httpErrorHandler

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.POST("/users", userHandler.CreateOrFetch)
	e.GET("/users", userHandler.GetByID)
	e.OPTIONS("/users", preflight("GET, POST, OPTIONS", "Content-Type"))

	e.GET("/outfits", outfitHandler.List)
	e.POST("/outfits", outfitHandler.Save)
	e.OPTIONS("/outfits", preflight("GET, POST, OPTIONS", "Content-Type, X-User-Id"))
	// the identity check precedes method dispatch on this endpoint
	for _, m := range []string{http.MethodPut, http.MethodDelete, http.MethodPatch, http.MethodHead} {
		e.Add(m, "/outfits", outfitHandler.MethodNotAllowed)
	}

	e.POST("/virtual-tryon", tryOnHandler.TryOn)
	e.OPTIONS("/virtual-tryon", preflight("POST, OPTIONS", "Content-Type, X-User-Id"))
}

// allowOrigin stamps the wildcard CORS origin on every response, errors
// included, so browser clients can always read the body.
func allowOrigin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderAccessControlAllowOrigin, "*")
		return next(c)
	}
}

// preflight answers OPTIONS with 200 and an empty body, advertising the
// endpoint's allowed methods and a one-day preflight cache.
func preflight(allowMethods, allowHeaders string) echo.HandlerFunc {
	return func(c echo.Context) error {
		h := c.Response().Header()
		h.Set(echo.HeaderAccessControlAllowMethods, allowMethods)
		h.Set(echo.HeaderAccessControlAllowHeaders, allowHeaders)
		h.Set(echo.HeaderAccessControlMaxAge, "86400")
		return c.NoContent(http.StatusOK)
	}
}

// httpErrorHandler renders every error as the shared {"error": message} shape,
// covering echo's own routing errors (404, 405) as well as handler errors.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	body := apperrors.ErrorResponse{Error: "Internal server error"}

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		switch m := he.Message.(type) {
		case apperrors.ErrorResponse:
			body = m
		case string:
			body = apperrors.ErrorResponse{Error: m}
		}
		if code == http.StatusMethodNotAllowed {
			body = apperrors.ErrorResponse{Error: "Method not allowed"}
		}
	} else {
		c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Path(), err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, body)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
