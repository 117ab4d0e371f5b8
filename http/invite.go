package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dukerupert/invitemail"
)

// APIKeyHeader carries the shared-secret for the send endpoint.
const APIKeyHeader = "X-API-Key"

// SendInviteRequest is the JSON body for POST /send-invite-email.
type SendInviteRequest struct {
	Email            string `json:"email"`
	Link             string `json:"link"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Role             string `json:"role"`
	OrganizationName string `json:"organization_name"`
	From             string `json:"from"`
}

// SendInviteResponse reports the delivery outcome. MessageID is null
// when the transport does not assign one.
type SendInviteResponse struct {
	Delivered bool    `json:"delivered"`
	MessageID *string `json:"messageId"`
}

// DeliveryFailureResponse is returned when the mail transport rejects
// the message. The caller may retry; the service never does.
type DeliveryFailureResponse struct {
	Delivered bool   `json:"delivered"`
	Reason    string `json:"reason"`
}

// handleSendInvite validates the request, composes the invitation email,
// and relays it through the mail dispatcher.
//
// Route: POST /send-invite-email
func (s *Server) handleSendInvite(c echo.Context) error {
	logger := s.log(c)

	// Body is parsed before authorization so malformed JSON fails the
	// request first, matching the pipeline ordering.
	var req SendInviteRequest
	if err := c.Bind(&req); err != nil {
		return invitemail.Invalid("Request body must be valid JSON")
	}

	if s.apiKey != "" && c.Request().Header.Get(APIKeyHeader) != s.apiKey {
		return invitemail.Unauthorized("Unauthorized")
	}

	email := invitemail.ExtractEmail(req.Email)
	link := strings.TrimSpace(req.Link)
	if email == "" || link == "" {
		return invitemail.Invalid(`A valid "email" and a non-empty "link" are required`)
	}

	if s.mailer == nil {
		return invitemail.Internal("SMTP credentials are not configured", nil)
	}
	if s.fromEmail == "" {
		return invitemail.Internal("Sender address is not configured", nil)
	}

	content := invitemail.ComposeInvite(invitemail.Invite{
		Email:        email,
		Link:         link,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         req.Role,
		Organization: req.OrganizationName,
	})

	// Explicit config override takes precedence over the request's
	// optional "from" field.
	replyTo := s.replyTo
	if replyTo == "" {
		replyTo = invitemail.ExtractEmail(req.From)
	}

	msg := invitemail.Message{
		From:    invitemail.FormatAddress(s.fromName, s.fromEmail),
		To:      email,
		Subject: content.Subject,
		Text:    content.Text,
		HTML:    content.HTML,
		ReplyTo: replyTo,
	}

	id, err := s.mailer.Send(c.Request().Context(), msg)
	if err != nil {
		logger.Error("invite delivery failed",
			slog.String("to", email),
			slog.String("error", err.Error()),
		)
		return c.JSON(http.StatusBadGateway, DeliveryFailureResponse{
			Delivered: false,
			Reason:    err.Error(),
		})
	}

	logger.Info("invite sent", slog.String("to", email))

	resp := SendInviteResponse{Delivered: true}
	if id != "" {
		resp.MessageID = &id
	}
	return c.JSON(http.StatusOK, resp)
}
