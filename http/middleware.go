package http

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// MaxBodySize caps inbound request bodies. Bodies over the limit fail
// before any route logic runs.
const MaxBodySize = "250K"

// registerMiddleware sets up all middleware for the server.
func (s *Server) registerMiddleware() {
	// Recovery middleware
	s.echo.Use(middleware.Recover())

	// Request ID middleware
	s.echo.Use(middleware.RequestID())

	// Logger middleware with request ID
	s.echo.Use(s.requestLoggerMiddleware())

	// Prometheus HTTP metrics
	s.echo.Use(metricsMiddleware())

	// CORS headers on every response, preflight short-circuit
	s.echo.Use(s.corsMiddleware())

	// Request body size cap
	s.echo.Use(middleware.BodyLimit(MaxBodySize))

	// Custom error handler
	s.echo.HTTPErrorHandler = s.httpErrorHandler
}

// corsMiddleware applies the CORS contract to every request before
// routing. In wildcard mode every origin is allowed; otherwise the
// request's Origin header must exactly match an allow-list entry to be
// echoed back. OPTIONS requests are answered immediately with 204 and
// an empty body, bypassing all further routing.
func (s *Server) corsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()

			h.Add(echo.HeaderVary, "Origin")
			if s.corsWildcard {
				h.Set(echo.HeaderAccessControlAllowOrigin, "*")
			} else if origin := c.Request().Header.Get(echo.HeaderOrigin); origin != "" &&
				slices.Contains(s.allowedOrigins, origin) {
				h.Set(echo.HeaderAccessControlAllowOrigin, origin)
			}
			h.Set(echo.HeaderAccessControlAllowHeaders, "Content-Type, X-API-Key")
			h.Set(echo.HeaderAccessControlAllowMethods, "GET, POST, OPTIONS")

			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusNoContent)
			}
			return next(c)
		}
	}
}

// requestLoggerMiddleware creates a middleware that logs requests with context.
func (s *Server) requestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			// Create request-scoped logger
			logger := s.logger.With(
				slog.String("request_id", requestID),
				slog.String("method", c.Request().Method),
				slog.String("path", c.Path()),
			)
			c.Set("logger", logger)

			err := next(c)

			// Log request completion
			duration := time.Since(start)
			status := c.Response().Status

			logAttrs := []any{
				slog.Int("status", status),
				slog.Duration("duration", duration),
			}

			if err != nil {
				logAttrs = append(logAttrs, slog.String("error", err.Error()))
				logger.Error("request failed", logAttrs...)
			} else if status >= 500 {
				logger.Error("request completed with server error", logAttrs...)
			} else if status >= 400 {
				logger.Warn("request completed with client error", logAttrs...)
			} else {
				logger.Info("request completed", logAttrs...)
			}

			return err
		}
	}
}

// log returns the request-scoped logger, falling back to the server logger.
func (s *Server) log(c echo.Context) *slog.Logger {
	if logger, ok := c.Get("logger").(*slog.Logger); ok {
		return logger
	}
	return s.logger
}
