package handlers

import (
	"net/http"
	"testing"
	"time"

	"banking-client/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventsHandler_WaitForRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	refresh := service_mocks.NewMockRefreshBroadcasterInterface(ctrl)
	handler := NewEventsHandler(refresh, time.Second)

	signals := make(chan struct{}, 1)
	signals <- struct{}{}
	cancelled := false
	refresh.EXPECT().Subscribe().Return((<-chan struct{})(signals), func() { cancelled = true })
	refresh.EXPECT().Published().Return(uint64(4))

	e := newTestEcho()
	c, rec := newSignedInContext(e, http.MethodGet, "/events/refresh", "")

	require.NoError(t, handler.WaitForRefresh(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"refreshed":true,"published":4}`, rec.Body.String())
	assert.True(t, cancelled)
}

func TestEventsHandler_TimesOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	refresh := service_mocks.NewMockRefreshBroadcasterInterface(ctrl)
	handler := NewEventsHandler(refresh, 10*time.Millisecond)

	refresh.EXPECT().Subscribe().Return((<-chan struct{})(make(chan struct{})), func() {})
	refresh.EXPECT().Published().Return(uint64(0))

	e := newTestEcho()
	c, rec := newSignedInContext(e, http.MethodGet, "/events/refresh", "")

	require.NoError(t, handler.WaitForRefresh(c))
	assert.JSONEq(t, `{"refreshed":false,"published":0}`, rec.Body.String())
}
