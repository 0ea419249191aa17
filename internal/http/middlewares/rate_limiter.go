package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/rueidis"

	apperrors "github.com/okoye-peter/project-management-app/internal/errors"
)

// RateLimiter enforces a fixed-window per-IP request limit backed by a
// shared redis counter, so the limit holds across replicas. If redis is
// unreachable the request passes through rather than failing.
func RateLimiter(client rueidis.Client, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := "rate_limit:" + c.RealIP()

			count, err := client.Do(
				ctx,
				client.B().Incr().Key(key).Build(),
			).AsInt64()
			if err != nil {
				return next(c)
			}

			if count == 1 {
				_ = client.Do(
					ctx,
					client.B().Expire().Key(key).Seconds(int64(window.Seconds())).Build(),
				).Error()
			}

			if count > int64(limit) {
				return apperrors.ErrRateLimitExceeded
			}

			return next(c)
		}
	}
}
