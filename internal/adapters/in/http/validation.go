package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// requestValidator checks every request the OpenAPI document describes against
// it, identity headers included. Other paths pass through.
func requestValidator(spec *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(spec)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}
	options := &openapi3filter.Options{AuthenticationFunc: checkActorHeader}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			err = openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			})
			if err == nil {
				return next(c)
			}

			var securityErr *openapi3filter.SecurityRequirementsError
			if errors.As(err, &securityErr) {
				return echo.NewHTTPError(http.StatusUnauthorized, errMissingActor.Error())
			}
			var requestErr *openapi3filter.RequestError
			if errors.As(err, &requestErr) {
				return echo.NewHTTPError(http.StatusBadRequest, requestErr.Error())
			}
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}, nil
}

// checkActorHeader accepts a header security scheme when its header is set.
// The values are parsed into an actor by the handler.
func checkActorHeader(_ context.Context, input *openapi3filter.AuthenticationInput) error {
	scheme := input.SecurityScheme
	if scheme.Type != "apiKey" || scheme.In != "header" {
		return fmt.Errorf("unsupported security scheme %s", input.SecuritySchemeName)
	}
	if input.RequestValidationInput.Request.Header.Get(scheme.Name) == "" {
		return fmt.Errorf("%s header is required", scheme.Name)
	}
	return nil
}
