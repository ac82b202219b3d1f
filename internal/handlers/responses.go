package handlers

import (
	"net/http"

	"banking-client/internal/dto"
	"banking-client/internal/errors"
	"banking-client/internal/gateway"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// Handlers answer failures through these helpers only:
//
// 1. SendError - local rejections with a catalogue code (4xx)
//    SendError(c, errors.AccountNotFound)
//    SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//
// 2. SendGatewayError - failures reported by the ledger. The ledger's code and
//    message are passed through; transport failures keep their retry hint.
//
// 3. SendResult - deposit, withdrawal and transfer outcomes, which are always
//    an OperationResult body.
//
// 4. SendSystemError - anything else (500). Internal details are not exposed.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Meta    any    `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError answers with a generic system error
func SendSystemError(c echo.Context, err error) error {
	errorResponse, _ := errors.WrapSystemError(err, getTraceID(c))
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendGatewayError answers with the ledger's own code and message
func SendGatewayError(c echo.Context, err error) error {
	gwErr, ok := gateway.AsError(err)
	if !ok {
		return SendSystemError(c, err)
	}

	errorResponse := errors.NewErrorResponse(
		errors.ErrorCode(gwErr.Code),
		getTraceID(c),
		errors.WithMessage(gwErr.Message),
	)
	return c.JSON(gatewayStatus(gwErr), errorResponse)
}

func gatewayStatus(gwErr *gateway.Error) int {
	switch {
	case gwErr.Kind == gateway.KindUnavailable:
		return http.StatusServiceUnavailable
	case gwErr.Status == http.StatusUnauthorized:
		return http.StatusUnauthorized
	case gwErr.Status == http.StatusNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

// SendResult writes an operation outcome. Local rejections are 422, ledger
// and transport failures keep their 5xx status.
func SendResult(c echo.Context, result *dto.OperationResult) error {
	if result.Success {
		return c.JSON(http.StatusOK, result)
	}

	status := errors.GetHTTPStatus(errors.ErrorCode(result.Code))
	if status < http.StatusInternalServerError {
		status = http.StatusUnprocessableEntity
	}
	return c.JSON(status, result)
}
