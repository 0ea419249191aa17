package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/okoye-peter/project-management-app/internal/errors"
	"github.com/okoye-peter/project-management-app/internal/logging"
)

// NewErrorHandler returns the central echo error handler. Validation
// failures and known exceptions map to structured envelopes; anything else
// is logged with full detail server-side and answered with a generic 500 —
// stack traces and storage errors never reach the client.
func NewErrorHandler(logger *logging.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var validationErr *apperrors.ValidationException
		if errors.As(err, &validationErr) {
			_ = c.JSON(validationErr.StatusCode, Response{
				Status:  "error",
				Message: validationErr.Message,
				Errors:  validationErr.Fields,
			})
			return
		}

		var appErr *apperrors.Exception
		if errors.As(err, &appErr) {
			_ = c.JSON(appErr.StatusCode, Response{
				Status:  "error",
				Message: appErr.Message,
			})
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			_ = c.JSON(httpErr.Code, Response{
				Status:  "error",
				Message: fmt.Sprintf("%v", httpErr.Message),
			})
			return
		}

		logger.Error(err.Error(), map[string]any{
			"method": c.Request().Method,
			"url":    c.Request().RequestURI,
		})
		_ = c.JSON(http.StatusInternalServerError, Response{
			Status:  "error",
			Message: "Something went wrong",
		})
	}
}
