package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// handleHealthCheck answers basic uptime probes.
//
// Route: GET /health
func (s *Server) handleHealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// handleLivenessCheck answers orchestrator liveness probes. It never
// checks dependencies.
//
// Route: GET /health/live
func (s *Server) handleLivenessCheck(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// handleReadinessCheck reports per-dependency status. A missing mailer
// is reported but does not make the service unready: it still serves
// health, docs, and metrics in degraded mode.
//
// Route: GET /health/ready
func (s *Server) handleReadinessCheck(c echo.Context) error {
	checks := make(map[string]string)
	if s.mailer != nil {
		checks["mailer"] = "ok"
	} else {
		checks["mailer"] = "disabled: missing SMTP credentials"
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status": "ready",
		"checks": checks,
	})
}
