package handlers

import (
	"errors"
	"net/http"
	"testing"

	"banking-client/internal/gateway"

	"github.com/stretchr/testify/assert"
)

func TestGatewayStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *gateway.Error
		want int
	}{
		{"open breaker", &gateway.Error{Kind: gateway.KindUnavailable}, http.StatusServiceUnavailable},
		{"expired session", &gateway.Error{Kind: gateway.KindServer, Status: http.StatusUnauthorized}, http.StatusUnauthorized},
		{"unknown resource", &gateway.Error{Kind: gateway.KindServer, Status: http.StatusNotFound}, http.StatusNotFound},
		{"server rejection", &gateway.Error{Kind: gateway.KindServer, Status: http.StatusConflict}, http.StatusBadGateway},
		{"transport", &gateway.Error{Kind: gateway.KindTransport, Err: errors.New("refused")}, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gatewayStatus(tt.err))
		})
	}
}

func TestSendGatewayError_PassesLedgerMessageThrough(t *testing.T) {
	e := newTestEcho()
	c, rec := newContext(e, http.MethodGet, "/", "")

	err := &gateway.Error{Kind: gateway.KindServer, Status: http.StatusBadRequest, Code: "HTTP_400", Message: "Account frozen"}

	assert.NoError(t, SendGatewayError(c, err))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	response := decodeError(rec)
	assert.Equal(t, "HTTP_400", response.Error.Code)
	assert.Equal(t, "Account frozen", response.Error.Message)
}

func TestSendGatewayError_NonGatewayErrorIsSystemError(t *testing.T) {
	e := newTestEcho()
	c, rec := newContext(e, http.MethodGet, "/", "")

	assert.NoError(t, SendGatewayError(c, errors.New("boom")))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}
