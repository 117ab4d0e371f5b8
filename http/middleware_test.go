package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestCORS_Wildcard(t *testing.T) {
	s, _ := newTestServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderOrigin, "https://anything.example.com")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Contains(t, rec.Header().Values(echo.HeaderVary), "Origin")
	assert.Equal(t, "Content-Type, X-API-Key", rec.Header().Get(echo.HeaderAccessControlAllowHeaders))
	assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get(echo.HeaderAccessControlAllowMethods))
}

func TestCORS_WildcardOnErrorResponses(t *testing.T) {
	s, _ := newTestServer(nil)

	rec := postInvite(s, `{"link":"https://example.com/r"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestCORS_ExactOriginMatch(t *testing.T) {
	s, _ := newTestServer(func(cfg *Config) {
		cfg.AllowedOrigins = []string{"https://app.example.com", "https://admin.example.com"}
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.example.com")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, "https://app.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	s, _ := newTestServer(func(cfg *Config) {
		cfg.AllowedOrigins = []string{"https://app.example.com"}
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderOrigin, "https://evil.example.com")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	// Origin header absent: the browser blocks the response.
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Contains(t, rec.Header().Values(echo.HeaderVary), "Origin")
}

func TestCORS_PreflightShortCircuit(t *testing.T) {
	s, mailer := newTestServer(nil)

	req := httptest.NewRequest(http.MethodOptions, "/send-invite-email", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.example.com")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Empty(t, mailer.Sent)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestCORS_PreflightForUnknownPath(t *testing.T) {
	s, _ := newTestServer(nil)

	req := httptest.NewRequest(http.MethodOptions, "/no-such-route", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestBodyLimit(t *testing.T) {
	s, mailer := newTestServer(nil)

	oversized := `{"email":"jane@example.com","link":"` + strings.Repeat("a", 300*1024) + `"}`
	rec := postInvite(s, oversized, nil)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Empty(t, mailer.Sent)
}
