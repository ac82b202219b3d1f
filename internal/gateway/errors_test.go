package gateway

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatusError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        errorBody
		wantMessage string
		wantCode    string
		wantDetails any
	}{
		{
			name:        "ledger message and code win",
			status:      http.StatusBadRequest,
			body:        errorBody{Message: "Insufficient balance", Code: "BAL"},
			wantMessage: "Insufficient balance",
			wantCode:    "BAL",
		},
		{
			name:        "defaults per status",
			status:      http.StatusUnauthorized,
			wantMessage: "Authentication required. Please log in again.",
			wantCode:    "HTTP_401",
		},
		{
			name:        "validation map carried as details",
			status:      http.StatusBadRequest,
			body:        errorBody{Message: "Validation failed", Data: map[string]any{"amount": "must be positive"}},
			wantMessage: "Validation failed",
			wantCode:    "HTTP_400",
			wantDetails: map[string]any{"amount": "must be positive"},
		},
		{
			name:        "error string as details",
			status:      http.StatusInternalServerError,
			body:        errorBody{Error: "Internal Server Error"},
			wantMessage: "Server error occurred. Please try again later.",
			wantCode:    "HTTP_500",
			wantDetails: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newStatusError(tt.status, tt.body)

			assert.Equal(t, tt.wantMessage, err.Message)
			assert.Equal(t, tt.wantCode, err.Code)
			assert.Equal(t, tt.wantDetails, err.Details)
			assert.Equal(t, KindServer, err.Kind)
			assert.Equal(t, tt.status, err.Status)
		})
	}
}

func TestErrorHelpers(t *testing.T) {
	cause := errors.New("connection refused")
	transport := newTransportError(cause)
	wrapped := fmt.Errorf("load accounts: %w", transport)

	gwErr, ok := AsError(wrapped)
	require.True(t, ok)
	assert.Same(t, transport, gwErr)
	assert.ErrorIs(t, wrapped, cause)
	assert.True(t, gwErr.IsTransport())
	assert.Equal(t, "NETWORK_001", CodeOf(wrapped))
	assert.Contains(t, transport.Error(), "NETWORK_001")

	assert.False(t, IsNotFound(wrapped))
	assert.True(t, IsNotFound(newStatusError(http.StatusNotFound, errorBody{})))

	plain := errors.New("boom")
	_, ok = AsError(plain)
	assert.False(t, ok)
	assert.Equal(t, "NETWORK_001", CodeOf(plain))
	assert.NotEmpty(t, MessageOf(plain))
	assert.Empty(t, MessageOf(nil))

	unavailable := newUnavailableError()
	assert.ErrorIs(t, unavailable, ErrCircuitBreakerOpen)
	assert.Equal(t, "SYSTEM_003", unavailable.Code)
	assert.Contains(t, unavailable.Error(), "SYSTEM_003")
}
