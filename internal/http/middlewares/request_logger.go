package middleware

import (
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "github.com/okoye-peter/project-management-app/internal/errors"
	"github.com/okoye-peter/project-management-app/internal/logging"
)

// RequestLogger writes one access-log entry per request.
func RequestLogger(logger *logging.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := c.Response().Status
			if err != nil {
				var httpErr *echo.HTTPError
				if errors.As(err, &httpErr) {
					status = httpErr.Code
				} else {
					status = apperrors.StatusCode(err)
				}
			}

			logger.Info("request completed", map[string]any{
				"method":      c.Request().Method,
				"url":         c.Request().RequestURI,
				"status":      status,
				"remote_ip":   c.RealIP(),
				"duration_ms": time.Since(start).Milliseconds(),
			})

			return err
		}
	}
}
