package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"pizza/internal/generated/servers"
	"pizza/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "Internal server error"

// fail writes the error body for a failed use case.
func (s *Server) fail(ctx echo.Context, err error) error {
	status, message := classify(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
	}
	return ctx.JSON(status, servers.Error{Code: status, Message: message})
}

func classify(err error) (int, string) {
	var (
		refErr        *errs.ReferenceNotFoundError
		notFoundErr   *errs.ObjectNotFoundError
		constraintErr *errs.ConstraintViolationError
	)

	switch {
	case errors.As(err, &refErr):
		return http.StatusNotFound, fmt.Sprintf("%s %v not found", refErr.Kind, refErr.ID)
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, fmt.Sprintf("%s %v not found", notFoundErr.ParamName, notFoundErr.ID)
	case errors.As(err, &constraintErr):
		return http.StatusConflict, "Conflicts with related records: " + constraintErr.Constraint
	case errs.IsValidation(err):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, internalErrorMessage
	}
}

// ErrorHandler renders errors escaping the handlers, such as unknown routes or
// malformed path parameters, in the API error format.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := internalErrorMessage

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
			message = fmt.Sprint(httpErr.Message)
		} else {
			logger.ErrorContext(ctx.Request().Context(), "unhandled error",
				"method", ctx.Request().Method,
				"path", ctx.Path(),
				"error", err)
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(status)
		} else {
			err = ctx.JSON(status, servers.Error{Code: status, Message: message})
		}
		if err != nil {
			logger.ErrorContext(ctx.Request().Context(), "write error response", "error", err)
		}
	}
}
