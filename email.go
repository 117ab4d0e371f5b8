package invitemail

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Mailer defines the operation for delivering a fully composed email.
// Implementations perform the actual network delivery and return the
// message identifier assigned to the outbound email, or an empty string
// if the transport does not produce one.
type Mailer interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// Message represents a fully composed outbound email.
type Message struct {
	// From is the sender, either a bare address or "Name <addr>" form.
	From string

	// To is the normalized recipient address.
	To string

	Subject string

	// Text is the plain-text body.
	Text string

	// HTML is the HTML body, sent as an alternative part.
	HTML string

	// ReplyTo directs replies to a different address. Empty omits the header.
	ReplyTo string
}

var bracketedAddr = regexp.MustCompile(`<([^>]+)>`)

// ExtractEmail normalizes a recipient address. It accepts either a bare
// address or a "Display Name <addr@host>" form, extracting the bracketed
// portion if present, trimming and lower-casing the result. Returns an
// empty string when no plausible address is found.
func ExtractEmail(s string) string {
	addr := s
	if m := bracketedAddr.FindStringSubmatch(s); m != nil {
		addr = m[1]
	}
	addr = strings.ToLower(strings.TrimSpace(addr))
	if !strings.Contains(addr, "@") {
		return ""
	}
	return addr
}

// FormatAddress renders a sender header value, using the
// "Name <addr>" form when a display name is present.
func FormatAddress(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}
