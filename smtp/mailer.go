// Package smtp delivers composed emails through an SMTP account using
// gomail. A single Mailer is constructed at startup and shared across
// requests; each Send dials the relay independently, so no locking is
// required.
package smtp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"github.com/dukerupert/invitemail"
)

// Compile-time interface check
var _ invitemail.Mailer = (*Mailer)(nil)

// Config holds SMTP connection parameters.
type Config struct {
	Host string
	Port int

	// Secure enables implicit TLS (SMTPS, typically port 465).
	// When false the dialer negotiates STARTTLS if the server offers it.
	Secure bool

	Username string
	Password string
}

// Mailer sends email over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	host   string
	logger *slog.Logger
}

// NewMailer creates an SMTP mailer for the given account.
func NewMailer(logger *slog.Logger, cfg Config) *Mailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	dialer.SSL = cfg.Secure

	return &Mailer{
		dialer: dialer,
		host:   cfg.Host,
		logger: logger,
	}
}

// Send delivers the message and returns the Message-ID assigned to it.
// The call blocks until the relay accepts or rejects the message; the
// transport applies its own dial timeout and cancellation is not
// supported once delivery has started.
func (m *Mailer) Send(ctx context.Context, msg invitemail.Message) (string, error) {
	gm, id := m.build(msg)

	if err := m.dialer.DialAndSend(gm); err != nil {
		m.logger.Error("failed to send email",
			slog.String("to", msg.To),
			slog.String("error", err.Error()),
		)
		return "", err
	}

	m.logger.Info("email sent",
		slog.String("to", msg.To),
		slog.String("message_id", id),
	)
	return id, nil
}

// build assembles the MIME message and assigns it a Message-ID.
func (m *Mailer) build(msg invitemail.Message) (*gomail.Message, string) {
	gm := gomail.NewMessage()
	gm.SetHeader("From", msg.From)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	if msg.ReplyTo != "" {
		gm.SetHeader("Reply-To", msg.ReplyTo)
	}

	id := fmt.Sprintf("<%s@%s>", uuid.NewString(), m.host)
	gm.SetHeader("Message-ID", id)

	gm.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		gm.AddAlternative("text/html", msg.HTML)
	}
	return gm, id
}
