package http

import (
	"errors"
	"fmt"
	"net/http"

	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// HandleError is the echo error handler. Domain rule violations map to 422, unknown
// orders and restaurants to 404, malformed input to 400. Anything else is logged and
// answered with a generic 500.
func (s *Server) HandleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, message := errorResponse(err)
	if code >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("route", c.Path()),
			zap.Error(err),
		)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, Error{Code: code, Message: message})
	}
	if writeErr != nil {
		s.logger.Warn("write error response", zap.Error(writeErr))
	}
}

func errorResponse(err error) (int, string) {
	var (
		httpErr     *echo.HTTPError
		notFoundErr *errs.ObjectNotFoundError
		domainErr   *errs.DomainError
	)

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, notFoundErr.Error()
	case errors.As(err, &domainErr):
		return http.StatusUnprocessableEntity, domainErr.Error()
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}
