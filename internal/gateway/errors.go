package gateway

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "banking-client/internal/errors"
)

// Kind classifies a ledger failure
type Kind string

const (
	// KindTransport covers connection failures and unreadable replies
	KindTransport Kind = "transport"
	// KindServer is a reply in which the ledger rejected the request
	KindServer Kind = "server"
	// KindDecode is a 2xx reply whose body had an unexpected shape
	KindDecode Kind = "decode"
	// KindUnavailable is returned without a request while the breaker is open
	KindUnavailable Kind = "unavailable"
)

// Error is the structured failure of every ledger call
type Error struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
	Status  int    `json:"-"`
	Kind    Kind   `json:"-"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("ledger error %s (status %d): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("ledger error %s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsTransport reports whether the failure should be retried by the user
func (e *Error) IsTransport() bool {
	return e.Kind == KindTransport || e.Kind == KindDecode || e.Kind == KindUnavailable
}

func newTransportError(err error) *Error {
	return &Error{
		Message: apperrors.GetErrorMessage(apperrors.NetworkUnavailable),
		Code:    string(apperrors.NetworkUnavailable),
		Details: err.Error(),
		Kind:    KindTransport,
		Err:     err,
	}
}

func newDecodeError(status int, err error) *Error {
	return &Error{
		Message: apperrors.GetErrorMessage(apperrors.NetworkInvalidReply),
		Code:    string(apperrors.NetworkInvalidReply),
		Details: err.Error(),
		Status:  status,
		Kind:    KindDecode,
		Err:     err,
	}
}

func newUnavailableError() *Error {
	return &Error{
		Message: apperrors.GetErrorMessage(apperrors.SystemServiceUnavailable),
		Code:    string(apperrors.SystemServiceUnavailable),
		Kind:    KindUnavailable,
		Err:     ErrCircuitBreakerOpen,
	}
}

// newStatusError builds the failure of a non-2xx reply. The ledger's own
// message and code win; otherwise per-status defaults are used.
func newStatusError(status int, body errorBody) *Error {
	e := &Error{
		Message: body.Message,
		Code:    body.Code,
		Details: body.Details,
		Status:  status,
		Kind:    KindServer,
	}
	if e.Details == nil {
		e.Details = body.Data
	}
	if e.Details == nil && body.Error != "" {
		e.Details = body.Error
	}
	if e.Message == "" {
		e.Message = apperrors.DefaultStatusMessage(status)
	}
	if e.Code == "" {
		e.Code = string(apperrors.HTTPStatusCode(status))
	}
	return e
}

type errorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Details any    `json:"details"`
	Data    any    `json:"data"`
	Error   string `json:"error"`
}

// AsError extracts a ledger error from an error chain
func AsError(err error) (*Error, bool) {
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr, true
	}
	return nil, false
}

// IsNotFound reports whether the ledger answered 404
func IsNotFound(err error) bool {
	gwErr, ok := AsError(err)
	return ok && gwErr.Status == http.StatusNotFound
}

// MessageOf returns the user-facing message of any error
func MessageOf(err error) string {
	if gwErr, ok := AsError(err); ok {
		return gwErr.Message
	}
	if err == nil {
		return ""
	}
	return apperrors.GetErrorMessage(apperrors.NetworkUnavailable)
}

// CodeOf returns the code of a ledger error, or NETWORK_001 for anything else
func CodeOf(err error) string {
	if gwErr, ok := AsError(err); ok {
		return gwErr.Code
	}
	return string(apperrors.NetworkUnavailable)
}
