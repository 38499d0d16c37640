package middleware

import (
	"time"

	"bobTheBar/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RequestLogger logs one line per request. Run it after RequestID so the id
// is on the response header.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			res := c.Response()
			logger.Info("request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", res.Status,
				"latency_ms", time.Since(start).Milliseconds(),
				"request_id", res.Header().Get(echo.HeaderXRequestID),
				"remote_ip", c.RealIP(),
			)

			return nil
		}
	}
}
