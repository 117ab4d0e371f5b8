package http

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// registerRoutes sets up all routes for the server.
// All routes are defined in this single file for easy navigation.
func (s *Server) registerRoutes() {
	// Health check routes (public)
	s.echo.GET("/health", s.handleHealthCheck)
	s.echo.GET("/health/live", s.handleLivenessCheck)
	s.echo.GET("/health/ready", s.handleReadinessCheck)

	// API documentation (public)
	s.echo.GET("/openapi.json", s.handleOpenAPIDocument)
	s.echo.GET("/docs", s.handleDocs)

	// Prometheus metrics
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Invite delivery (x-api-key protected when configured)
	s.echo.POST("/send-invite-email", s.handleSendInvite)
}
