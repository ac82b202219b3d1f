package middleware

import (
	stderrors "errors"
	"log/slog"
	"net/http"
	"strconv"

	"banking-client/internal/errors"
	"banking-client/internal/gateway"
	"banking-client/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API errors counter metric
	apiErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_errors_total",
			Help: "Total number of API errors by code, endpoint, and status",
		},
		[]string{"code", "endpoint", "status"},
	)
)

// NewHTTPErrorHandler formats every error a handler returns as the standard
// error body. Validation errors become VALIDATION_001 with one detail per
// field. Ledger errors keep the ledger's code and message.
func NewHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		traceID := GetTraceID(c)
		if traceID == "" {
			traceID = "unknown"
		}

		errorResponse, httpStatus := toErrorResponse(err, traceID)

		level := slog.LevelWarn
		if httpStatus >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request().Context(), level, "request failed",
			slog.String("trace_id", traceID),
			slog.String("error_code", errorResponse.Error.Code),
			slog.Int("status", httpStatus),
			slog.String("method", c.Request().Method),
			slog.String("path", c.Request().URL.Path),
			slog.String("error", err.Error()),
		)

		apiErrorsTotal.WithLabelValues(
			errorResponse.Error.Code,
			c.Path(),
			strconv.Itoa(httpStatus),
		).Inc()

		if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
			logger.Error("failed to send error response",
				slog.String("trace_id", traceID),
				slog.String("error", sendErr.Error()),
			)
		}
	}
}

func toErrorResponse(err error, traceID string) (*errors.ErrorResponse, int) {
	var echoErr *echo.HTTPError
	var validationErrs validator.ValidationErrors
	var gwErr *gateway.Error

	switch {
	case stderrors.As(err, &echoErr):
		code := mapHTTPStatusToErrorCode(echoErr.Code)
		opts := []errors.ErrorOption{}
		if message, ok := echoErr.Message.(string); ok && message != "" {
			opts = append(opts, errors.WithMessage(message))
		}
		return errors.NewErrorResponse(code, traceID, opts...), echoErr.Code
	case stderrors.As(err, &validationErrs):
		return errors.NewValidationError(validation.FieldErrors(validationErrs), traceID), http.StatusBadRequest
	case stderrors.As(err, &gwErr):
		status := http.StatusBadGateway
		if gwErr.Kind == gateway.KindUnavailable {
			status = http.StatusServiceUnavailable
		}
		return errors.NewErrorResponse(
			errors.ErrorCode(gateway.CodeOf(gwErr)),
			traceID,
			errors.WithMessage(gateway.MessageOf(gwErr)),
		), status
	default:
		errorResponse, _ := errors.WrapSystemError(err, traceID)
		return errorResponse, http.StatusInternalServerError
	}
}

// mapHTTPStatusToErrorCode maps HTTP status codes to error codes
func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusUnsupportedMediaType:
		return errors.ValidationGeneral
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.AuthMissingSession
	case http.StatusNotFound:
		return errors.AccountNotFound
	case http.StatusUnprocessableEntity:
		return errors.ValidationGeneral
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusBadGateway:
		return errors.NetworkUnavailable
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemUnexpectedError
	}
}
