package http

import (
	"errors"
	"log/slog"
	"net/http"

	"freight/internal/adapters/in/http/openapi"
	"freight/internal/core/domain/model/address"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// StatusOf maps an application error to its HTTP status.
func StatusOf(err error) int {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	if kind, ok := address.KindOf(err); ok {
		switch kind {
		case address.KindInvalidCode, address.KindNotFound, address.KindBadRequest:
			return http.StatusBadRequest
		case address.KindTimeout, address.KindNetworkError, address.KindServiceUnavailable:
			return http.StatusServiceUnavailable
		default:
			return http.StatusBadGateway
		}
	}

	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound), errors.Is(err, errs.ErrReferenceNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorHandler renders every error as openapi.Error. Server-side failures
// are logged and their details withheld from the client.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status := StatusOf(err)
		message := err.Error()

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			if m, ok := httpErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(status)
			}
		}

		if status >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "request failed",
				slog.String("method", ctx.Request().Method),
				slog.String("path", ctx.Path()),
				slog.Int("status", status),
				slog.String("error", err.Error()),
			)
			if status == http.StatusInternalServerError {
				message = "Internal server error"
			}
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(status)
		} else {
			writeErr = ctx.JSON(status, openapi.Error{Code: status, Message: message})
		}
		if writeErr != nil {
			logger.Error("failed to write error response", slog.String("error", writeErr.Error()))
		}
	}
}
