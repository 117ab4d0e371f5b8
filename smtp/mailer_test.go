package smtp

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukerupert/invitemail"
)

func newTestMailer() *Mailer {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewMailer(logger, Config{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "invites@example.com",
		Password: "secret",
	})
}

func TestBuildMessageHeaders(t *testing.T) {
	m := newTestMailer()

	gm, id := m.build(invitemail.Message{
		From:    "Attendance Platform <invites@example.com>",
		To:      "jane@example.com",
		Subject: "You're invited to Acme Corp",
		Text:    "plain body",
		HTML:    "<p>html body</p>",
		ReplyTo: "admin@example.com",
	})

	assert.Equal(t, []string{"Attendance Platform <invites@example.com>"}, gm.GetHeader("From"))
	assert.Equal(t, []string{"jane@example.com"}, gm.GetHeader("To"))
	assert.Equal(t, []string{"You're invited to Acme Corp"}, gm.GetHeader("Subject"))
	assert.Equal(t, []string{"admin@example.com"}, gm.GetHeader("Reply-To"))

	require.Len(t, gm.GetHeader("Message-ID"), 1)
	assert.Equal(t, gm.GetHeader("Message-ID")[0], id)
	assert.Regexp(t, `^<[0-9a-f-]+@smtp\.example\.com>$`, id)
}

func TestBuildMessageOmitsReplyTo(t *testing.T) {
	m := newTestMailer()

	gm, _ := m.build(invitemail.Message{
		From:    "invites@example.com",
		To:      "jane@example.com",
		Subject: "subject",
		Text:    "body",
	})

	assert.Empty(t, gm.GetHeader("Reply-To"))
}

func TestNewMailerSecureFlag(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	m := NewMailer(logger, Config{Host: "smtp.example.com", Port: 465, Secure: true})
	assert.True(t, m.dialer.SSL)

	m = NewMailer(logger, Config{Host: "smtp.example.com", Port: 587})
	assert.False(t, m.dialer.SSL)
}
