// Package http exposes the food order use cases over the JSON API described
// in api/openapi.yml, served by echo.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"foodorder/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{h: h, logger: logger.With("component", "HTTPServer")}
}

// NewEcho builds the echo instance with every API route, /health, /metrics
// and the swagger UI. API requests are checked against the OpenAPI document
// before they reach the server.
func NewEcho(s *Server, gatherer prometheus.Gatherer) (*echo.Echo, error) {
	spec, err := servers.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load openapi spec: %w", err)
	}
	validate, err := requestValidator(spec)
	if err != nil {
		return nil, err
	}
	if err = registerDocs(spec); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.handleError

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Use(validate)
	servers.RegisterHandlers(e, s)
	return e, nil
}
