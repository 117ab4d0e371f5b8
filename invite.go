package invitemail

import (
	"fmt"
	"html"
	"strings"
)

// DefaultOrganization is the organization label used when an invite
// does not carry one.
const DefaultOrganization = "Attendance Platform"

// Invite holds the validated inputs for a registration invitation.
type Invite struct {
	// Email is the normalized recipient address.
	Email string

	// Link is the registration link the recipient must follow.
	Link string

	// Optional display fields.
	FirstName    string
	LastName     string
	Role         string
	Organization string
}

// Content is the composed invitation: subject line plus plain-text and
// HTML bodies. Derived deterministically from an Invite.
type Content struct {
	Subject string
	Text    string
	HTML    string
}

// RecipientName returns the display name used in the greeting: first and
// last name joined by a space, or "there" when both are absent.
func (inv Invite) RecipientName() string {
	name := strings.TrimSpace(strings.TrimSpace(inv.FirstName) + " " + strings.TrimSpace(inv.LastName))
	if name == "" {
		return "there"
	}
	return name
}

// OrganizationLabel returns the organization name, falling back to the
// platform default.
func (inv Invite) OrganizationLabel() string {
	if org := strings.TrimSpace(inv.Organization); org != "" {
		return org
	}
	return DefaultOrganization
}

// RoleLabel returns the role with underscores replaced by spaces, or
// "member" when no role was given.
func (inv Invite) RoleLabel() string {
	role := strings.TrimSpace(inv.Role)
	if role == "" {
		return "member"
	}
	return strings.ReplaceAll(role, "_", " ")
}

// ComposeInvite renders the invitation email for the given invite.
// Pure and deterministic: identical inputs yield identical output.
//
// Free-text fields (name, organization, role) are HTML-escaped before
// being embedded in the HTML body; the plain-text body carries them
// verbatim.
func ComposeInvite(inv Invite) Content {
	name := inv.RecipientName()
	org := inv.OrganizationLabel()
	role := inv.RoleLabel()

	subject := "You're invited to " + org

	text := fmt.Sprintf(`Hi %s,

You have been invited to join %s as a %s.

Use the link below to complete your registration:

%s

If you weren't expecting this invitation, you can safely ignore this email.`,
		name, org, role, inv.Link)

	htmlBody := fmt.Sprintf(`<p>Hi %s,</p>
<p>You have been invited to join <strong>%s</strong> as a %s.</p>
<p>Use the link below to complete your registration:</p>
<p><a href="%s" target="_blank" rel="noopener">%s</a></p>
<p>If you weren't expecting this invitation, you can safely ignore this email.</p>`,
		html.EscapeString(name),
		html.EscapeString(org),
		html.EscapeString(role),
		html.EscapeString(inv.Link),
		html.EscapeString(inv.Link))

	return Content{
		Subject: subject,
		Text:    text,
		HTML:    htmlBody,
	}
}
