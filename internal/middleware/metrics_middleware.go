package middleware

import (
	"quickBite/pkg/metrics"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// Metrics records request latency per route into Prometheus.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			metrics.RequestDuration.WithLabelValues(
				c.Request().Method,
				c.Path(),
				strconv.Itoa(c.Response().Status),
			).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
