package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"freight/internal/adapters/in/http/openapi"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter wires the API, its middleware, the health check and the Swagger UI.
func NewRouter(server openapi.ServerInterface, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := openapi.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	requestValidator, err := OpenAPIRequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(middleware.RequestID())
	e.Use(RequestLogger(logger))
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("", requestValidator)
	openapi.RegisterHandlers(api, server)

	return e, nil
}
