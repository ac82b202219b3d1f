package middleware

import (
	"banking-client/internal/gateway"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	TraceIDHeader     = "X-Trace-ID"
	TraceIDContextKey = "trace_id"

	maxTraceIDLength = 128
)

// RequestID tags every request with a trace id. A caller supplied X-Trace-ID
// or X-Request-ID is reused when it looks sane; otherwise a uuid is minted.
// The id is echoed back and travels to the ledger on the request context.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			traceID := incomingTraceID(req.Header.Get(TraceIDHeader), req.Header.Get(echo.HeaderXRequestID))

			c.Set(TraceIDContextKey, traceID)
			c.SetRequest(req.WithContext(gateway.WithRequestID(req.Context(), traceID)))
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

func incomingTraceID(candidates ...string) string {
	for _, id := range candidates {
		if isPrintableID(id) {
			return id
		}
	}
	return uuid.NewString()
}

func isPrintableID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}

// GetTraceID returns the request's trace id, or "" outside RequestID
func GetTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}
