package middleware

import (
	"log/slog"
	"net/http"

	"dinas_portal/internal/lib/logger/sl"
	"dinas_portal/internal/metrics"
	"dinas_portal/internal/ratelimit"
	"dinas_portal/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// RateLimit throttles requests per client IP.
type RateLimit struct {
	log     *slog.Logger
	limiter ratelimit.Limiter
}

func NewRateLimit(log *slog.Logger, limiter ratelimit.Limiter) *RateLimit {
	return &RateLimit{log: log, limiter: limiter}
}

func (r *RateLimit) Name() string { return "ratelimit" }

func (r *RateLimit) Intercept(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		const op = "middleware.RateLimit"

		key := c.Request().Method + " " + c.Path() + " " + c.RealIP()

		allowed, err := r.limiter.Allow(c.Request().Context(), key)
		if err != nil {
			// limiter backend down: let the request through
			r.log.Error("rate limiter failed", slog.String("op", op), sl.Err(err))
			return next(c)
		}

		if !allowed {
			metrics.RateLimitedTotal.WithLabelValues(c.Path()).Inc()
			r.log.Warn("rate limit exceeded", slog.String("op", op), slog.String("ip", c.RealIP()))
			return c.JSON(http.StatusTooManyRequests, response.ErrTooManyRequests)
		}

		return next(c)
	}
}
