package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func securedResponse(t *testing.T, environment string) http.Header {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
	rec := httptest.NewRecorder()

	handler := SecurityHeaders(environment)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec.Header()
}

func TestSecurityHeaders(t *testing.T) {
	header := securedResponse(t, "development")

	assert.Equal(t, "nosniff", header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", header.Get("X-Frame-Options"))
	assert.Equal(t, "default-src 'none'; frame-ancestors 'none'", header.Get("Content-Security-Policy"))
	assert.Contains(t, header.Get("Cache-Control"), "no-store")
	assert.Equal(t, "no-cache", header.Get("Pragma"))
	assert.Empty(t, header.Get("Strict-Transport-Security"))
}

func TestSecurityHeaders_ProductionSendsHSTS(t *testing.T) {
	header := securedResponse(t, "production")

	assert.Contains(t, header.Get("Strict-Transport-Security"), "max-age=31536000")
}
