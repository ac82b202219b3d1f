package handlers

import (
	"net/http"
	"time"

	"banking-client/internal/services"

	"github.com/labstack/echo/v4"
)

// EventsHandler lets views wait for the refresh notification over HTTP
type EventsHandler struct {
	refresh services.RefreshBroadcasterInterface
	timeout time.Duration
}

func NewEventsHandler(refresh services.RefreshBroadcasterInterface, timeout time.Duration) *EventsHandler {
	return &EventsHandler{
		refresh: refresh,
		timeout: timeout,
	}
}

// WaitForRefresh holds the request until the next refresh is published or
// the poll times out. The body carries no state; views re-read what they show.
// @Summary Long-poll for the refresh notification
// @Tags Events
// @Produce json
// @Success 200 {object} object{refreshed=bool,published=int}
// @Router /events/refresh [get]
func (h *EventsHandler) WaitForRefresh(c echo.Context) error {
	signals, cancel := h.refresh.Subscribe()
	defer cancel()

	timer := time.NewTimer(h.timeout)
	defer timer.Stop()

	refreshed := false
	select {
	case <-signals:
		refreshed = true
	case <-timer.C:
	case <-c.Request().Context().Done():
		return nil
	}

	return c.JSON(http.StatusOK, map[string]any{
		"refreshed": refreshed,
		"published": h.refresh.Published(),
	})
}
