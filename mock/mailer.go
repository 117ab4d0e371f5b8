package mock

import (
	"context"

	"github.com/dukerupert/invitemail"
)

// Compile-time interface check
var _ invitemail.Mailer = (*Mailer)(nil)

// Mailer is a mock implementation of invitemail.Mailer.
type Mailer struct {
	SendFn func(ctx context.Context, msg invitemail.Message) (string, error)

	// Sent records every message passed to Send for test assertions.
	Sent []invitemail.Message
}

func (m *Mailer) Send(ctx context.Context, msg invitemail.Message) (string, error) {
	m.Sent = append(m.Sent, msg)
	if m.SendFn != nil {
		return m.SendFn(ctx, msg)
	}
	return "", nil
}

// Reset clears all recorded messages.
func (m *Mailer) Reset() {
	m.Sent = nil
}

// LastMessage returns the last sent message, or nil if none.
func (m *Mailer) LastMessage() *invitemail.Message {
	if len(m.Sent) == 0 {
		return nil
	}
	return &m.Sent[len(m.Sent)-1]
}
