package middleware

import (
	"strconv"
	"time"

	"dinas_portal/internal/metrics"

	"github.com/labstack/echo/v4"
)

type Prometheus struct{}

func NewPrometheus() *Prometheus { return &Prometheus{} }

func (p *Prometheus) Name() string { return "prometheus" }

func (p *Prometheus) Intercept(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		duration := time.Since(start).Seconds()

		status := c.Response().Status
		if he, ok := err.(*echo.HTTPError); ok && !c.Response().Committed {
			status = he.Code
		}

		// route template, not the raw URL, keeps label cardinality bounded
		path := c.Path()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request().Method,
			path,
			strconv.Itoa(status),
		).Inc()

		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request().Method,
			path,
		).Observe(duration)

		return err
	}
}
