package middleware

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type RequestLogger struct {
	mw echo.MiddlewareFunc
}

func NewRequestLogger(log *slog.Logger) *RequestLogger {
	log = log.With(slog.String("component", "middleware/logger"))

	return &RequestLogger{
		mw: echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
			LogMethod:    true,
			LogURI:       true,
			LogStatus:    true,
			LogRemoteIP:  true,
			LogLatency:   true,
			LogRequestID: true,
			LogError:     true,
			HandleError:  true,
			LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
				attrs := []any{
					slog.String("method", v.Method),
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
					slog.String("remote_ip", v.RemoteIP),
					slog.Duration("duration", v.Latency),
				}
				if v.RequestID != "" {
					attrs = append(attrs, slog.String("request_id", v.RequestID))
				}

				if v.Error != nil {
					log.Error("request failed", append(attrs, slog.String("error", v.Error.Error()))...)
					return nil
				}

				log.Info("request completed", attrs...)
				return nil
			},
		}),
	}
}

func (l *RequestLogger) Name() string { return "logger" }

func (l *RequestLogger) Intercept(next echo.HandlerFunc) echo.HandlerFunc {
	return l.mw(next)
}
