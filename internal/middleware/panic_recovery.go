package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"banking-client/internal/errors"
	"banking-client/internal/handlers"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a panicking handler into a SYSTEM_001 response. The
// stack goes to the log only.
func PanicRecovery(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				logger.ErrorContext(c.Request().Context(), "panic recovered",
					slog.String("trace_id", GetTraceID(c)),
					slog.String("panic", fmt.Sprint(r)),
					slog.String("stack_trace", string(debug.Stack())),
					slog.String("method", c.Request().Method),
					slog.String("path", c.Request().URL.Path),
				)

				if c.Response().Committed {
					return
				}
				if sendErr := handlers.SendError(c, errors.SystemInternalError); sendErr != nil {
					err = sendErr
				}
			}()

			return next(c)
		}
	}
}
