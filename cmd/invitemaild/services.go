package main

import (
	"log/slog"

	"github.com/dukerupert/invitemail"
	"github.com/dukerupert/invitemail/smtp"
)

// newMailer constructs the SMTP mailer, or returns nil when credentials
// are missing. The service still starts in that case and rejects send
// requests at call time.
func newMailer(cfg *Config, logger *slog.Logger) invitemail.Mailer {
	if cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		logger.Warn("SMTP credentials not set, mail delivery disabled",
			slog.String("host", cfg.SMTPHost),
			slog.Int("port", cfg.SMTPPort),
		)
		return nil
	}

	logger.Info("SMTP mailer configured",
		slog.String("host", cfg.SMTPHost),
		slog.Int("port", cfg.SMTPPort),
		slog.Bool("secure", cfg.SMTPSecure),
	)
	return smtp.NewMailer(logger, smtp.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Secure:   cfg.SMTPSecure,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
	})
}
