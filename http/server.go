package http

import (
	"context"
	"log/slog"
	"net"
	"slices"

	"github.com/labstack/echo/v4"

	"github.com/dukerupert/invitemail"
)

// Server represents the HTTP server with all its dependencies.
type Server struct {
	echo   *echo.Echo
	ln     net.Listener
	logger *slog.Logger

	// Configuration
	Addr string

	// Shared-secret for the send endpoint. Empty disables authorization.
	apiKey string

	// CORS allow-list. corsWildcard is set when the list contains "*".
	allowedOrigins []string
	corsWildcard   bool

	// Sender identity
	fromName  string
	fromEmail string
	replyTo   string

	// External services. mailer is nil when SMTP credentials are not
	// configured; send requests are rejected at call time.
	mailer invitemail.Mailer
}

// Config holds the configuration for creating a new Server.
type Config struct {
	Addr   string
	Logger *slog.Logger

	APIKey         string
	AllowedOrigins []string

	FromName  string
	FromEmail string
	ReplyTo   string

	Mailer invitemail.Mailer
}

// NewServer creates a new HTTP server with the given configuration.
func NewServer(cfg Config) *Server {
	s := &Server{
		Addr:           cfg.Addr,
		logger:         cfg.Logger,
		apiKey:         cfg.APIKey,
		allowedOrigins: cfg.AllowedOrigins,
		corsWildcard:   slices.Contains(cfg.AllowedOrigins, "*"),
		fromName:       cfg.FromName,
		fromEmail:      cfg.FromEmail,
		replyTo:        cfg.ReplyTo,
		mailer:         cfg.Mailer,
	}

	s.echo = echo.New()
	s.echo.HideBanner = true
	s.echo.HidePort = true

	// Register middleware and routes
	s.registerMiddleware()
	s.registerRoutes()

	return s
}

// Echo returns the underlying Echo instance.
// Use sparingly - prefer registering routes through Server methods.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Open starts the HTTP server.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln

	go func() {
		if err := s.echo.Server.Serve(s.ln); err != nil {
			s.logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	s.logger.Info("server started", slog.String("addr", s.Addr))
	return nil
}

// Close gracefully shuts down the HTTP server.
func (s *Server) Close(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}

// URL returns the URL of the server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}
