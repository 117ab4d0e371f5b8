package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dukerupert/invitemail"
)

// errorStatusCode maps domain error codes to HTTP status codes.
func errorStatusCode(code string) int {
	switch code {
	case invitemail.EINVALID:
		return http.StatusBadRequest
	case invitemail.EUNAUTHORIZED:
		return http.StatusUnauthorized
	case invitemail.ENOTFOUND:
		return http.StatusNotFound
	case invitemail.EUNAVAILABLE:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse represents the JSON error response format.
type ErrorResponse struct {
	Error string `json:"error"`
}

// httpErrorHandler converts errors returned by handlers into structured
// JSON responses. Domain error codes decide the status; the message is
// returned to the caller. Configuration errors (EINTERNAL) are surfaced
// with their message since they name operator misconfiguration, not
// internals.
func (s *Server) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		message := fmt.Sprintf("%v", he.Message)
		if he.Code == http.StatusRequestEntityTooLarge {
			message = "Request body exceeds the " + MaxBodySize + " limit"
		}
		if writeErr := c.JSON(he.Code, ErrorResponse{Error: message}); writeErr != nil {
			s.logger.Error("failed to write error response", slog.String("error", writeErr.Error()))
		}
		return
	}

	code := invitemail.ErrorCode(err)
	status := errorStatusCode(code)

	if code == invitemail.EINTERNAL {
		s.log(c).Error("internal error",
			slog.String("error", err.Error()),
			slog.String("path", c.Path()),
			slog.String("method", c.Request().Method),
		)
	}

	if writeErr := c.JSON(status, ErrorResponse{Error: invitemail.ErrorMessage(err)}); writeErr != nil {
		s.logger.Error("failed to write error response", slog.String("error", writeErr.Error()))
	}
}
