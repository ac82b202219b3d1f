package handlers

import (
	"net/http"
	"time"

	"banking-client/internal/errors"
	"banking-client/internal/gateway"
	"banking-client/internal/repositories"

	"github.com/labstack/echo/v4"
)

// HealthCheckHandler reports whether the mirror is reachable and how the
// ledger guard stands
type HealthCheckHandler struct {
	mirror  repositories.MirrorRepositoryInterface
	breaker gateway.CircuitBreakerInterface
}

func NewHealthCheckHandler(mirror repositories.MirrorRepositoryInterface, breaker gateway.CircuitBreakerInterface) *HealthCheckHandler {
	return &HealthCheckHandler{mirror: mirror, breaker: breaker}
}

// HealthCheck
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,ledger=string,time=string}
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - mirror unreachable"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if err := h.mirror.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, errors.NewErrorResponse(
			errors.SystemServiceUnavailable,
			getTraceID(c),
			errors.WithDetails("Mirror storage unreachable"),
		))
	}

	ledger := "unknown"
	if h.breaker != nil {
		ledger = h.breaker.GetState().String()
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"ledger": ledger,
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
