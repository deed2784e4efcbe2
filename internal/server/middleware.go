package server

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// RequestLogger returns middleware that logs every request with zerolog and
// attaches a request-scoped logger to the context.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			rid := req.Header.Get("X-Request-ID")
			if rid == "" {
				rid = uuid.NewString()
				c.Response().Header().Set("X-Request-ID", rid)
			}

			logger := log.With().
				Str("requestId", rid).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("remoteIp", c.RealIP()).
				Logger()

			ctx := logger.WithContext(req.Context())
			c.SetRequest(req.WithContext(ctx))

			err := next(c)

			status := c.Response().Status
			duration := time.Since(start)

			if status >= 500 || err != nil {
				logger.Error().
					Err(err).
					Int("status", status).
					Dur("duration", duration).
					Msg("http request failed")
			} else {
				logger.Info().
					Int("status", status).
					Dur("duration", duration).
					Msg("http request served")
			}

			return err
		}
	}
}
