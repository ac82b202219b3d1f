package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"banking-client/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newParamsContext(target string) (echo.Context, *http.Request) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return echo.New().NewContext(req, httptest.NewRecorder()), req
}

func TestGetIntParam(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   int
	}{
		{name: "present", target: "/?limit=25", want: 25},
		{name: "missing", target: "/", want: 7},
		{name: "malformed", target: "/?limit=ten", want: 7},
		{name: "negative", target: "/?limit=-3", want: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newParamsContext(tt.target)
			assert.Equal(t, tt.want, getIntParam(c, "limit", 7))
		})
	}
}

func TestGetUserIDFromContext(t *testing.T) {
	c, _ := newParamsContext("/")

	_, err := getUserIDFromContext(c)
	assert.ErrorIs(t, err, ErrUnauthorized)

	c.Set(UserIDContextKey, models.ID("42"))
	userID, err := getUserIDFromContext(c)
	assert.NoError(t, err)
	assert.Equal(t, models.ID("42"), userID)
}

func TestGetClientIP_PrefersForwardedFor(t *testing.T) {
	c, req := newParamsContext("/")
	req.Header.Set(echo.HeaderXForwardedFor, "203.0.113.9, 10.0.0.1")

	assert.Equal(t, "203.0.113.9", getClientIP(c))
}
