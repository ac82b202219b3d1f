package handlers

import (
	"errors"
	"net/http"
	"testing"

	"banking-client/internal/gateway"
	"banking-client/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mirror := repository_mocks.NewMockMirrorRepositoryInterface(ctrl)
	breaker := gateway.NewCircuitBreaker(gateway.DefaultCircuitBreakerConfig(), nil)
	handler := NewHealthCheckHandler(mirror, breaker)
	e := newTestEcho()

	mirror.EXPECT().Ping(gomock.Any()).Return(nil)
	c, rec := newContext(e, http.MethodGet, "/health", "")
	require.NoError(t, handler.HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ledger":"closed"`)

	mirror.EXPECT().Ping(gomock.Any()).Return(errors.New("database is locked"))
	c, rec = newContext(e, http.MethodGet, "/health", "")
	require.NoError(t, handler.HealthCheck(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "SYSTEM_003", decodeError(rec).Error.Code)
}
