package http

import (
	"errors"
	"fmt"
	"net/http"

	"foodorder/internal/generated/servers"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var errMissingActor = errors.New("X-Actor-ID and X-Actor-Role headers are required")

func statusFor(err error) int {
	switch {
	case errors.Is(err, errMissingActor):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err with the status of its error class. Internal errors are
// logged and reported without detail.
func (s *Server) fail(c echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		message = http.StatusText(code)
	}
	return c.JSON(code, servers.Error{Code: code, Message: message})
}

func (s *Server) badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}

// handleError renders errors returned by middleware and the generated
// wrappers, such as a malformed path parameter, in the API error shape.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = fmt.Sprint(httpErr.Message)
	} else {
		s.logger.ErrorContext(c.Request().Context(), "unhandled error",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
	}

	if err = c.JSON(code, servers.Error{Code: code, Message: message}); err != nil {
		s.logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", err)
	}
}
