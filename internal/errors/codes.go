package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode represents a standardized error code used throughout the engine
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthMissingSession     ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidAmount ErrorCode = "VALIDATION_005"
	ValidationBelowMinimum  ErrorCode = "VALIDATION_006"
	ValidationInvalidDate   ErrorCode = "VALIDATION_007"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound            ErrorCode = "ACCOUNT_001"
	AccountInactive            ErrorCode = "ACCOUNT_002"
	AccountInsufficientBalance ErrorCode = "ACCOUNT_003"
	AccountInvalidType         ErrorCode = "ACCOUNT_004"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionFailed           ErrorCode = "TRANSACTION_001"
	TransactionInvalidType      ErrorCode = "TRANSACTION_002"
	TransactionMissingRecipient ErrorCode = "TRANSACTION_003"
	TransactionSameAccount      ErrorCode = "TRANSACTION_004"
)

// Daily limit error codes (LIMIT_*)
const (
	LimitExceeded        ErrorCode = "LIMIT_001"
	LimitInvalidCategory ErrorCode = "LIMIT_002"
)

// Beneficiary error codes (BENEFICIARY_*)
const (
	BeneficiaryNotFound ErrorCode = "BENEFICIARY_001"
	BeneficiaryInvalid  ErrorCode = "BENEFICIARY_002"
)

// Transport error codes (NETWORK_*)
const (
	NetworkUnavailable  ErrorCode = "NETWORK_001"
	NetworkInvalidReply ErrorCode = "NETWORK_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemStorageError       ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials: "Invalid username or password",
	AuthMissingSession:     "No active session. Please log in",
	AuthExpiredToken:       "Session has expired. Please log in again",
	AuthInvalidTokenFormat: "Invalid session token format",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidAmount: "Please enter a valid amount",
	ValidationBelowMinimum:  "Amount is below the minimum allowed",
	ValidationInvalidDate:   "Invalid date format or range",

	// Account errors
	AccountNotFound:            "Account not found",
	AccountInactive:            "Account is closed or inactive",
	AccountInsufficientBalance: "Insufficient balance",
	AccountInvalidType:         "Invalid account type",

	// Transaction errors
	TransactionFailed:           "Transaction failed",
	TransactionInvalidType:      "Invalid transaction type",
	TransactionMissingRecipient: "Recipient account number is required",
	TransactionSameAccount:      "Cannot transfer to the same account",

	// Daily limit errors
	LimitExceeded:        "Daily limit exceeded",
	LimitInvalidCategory: "Invalid daily limit category",

	// Beneficiary errors
	BeneficiaryNotFound: "Beneficiary not found",
	BeneficiaryInvalid:  "Invalid beneficiary details",

	// Transport errors
	NetworkUnavailable:  "Network error occurred. Please check your connection and try again.",
	NetworkInvalidReply: "Unexpected response from the server. Please try again.",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemStorageError:       "Local storage error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}

// HTTPStatusCode is the code used for a ledger failure that carried no code of its own
func HTTPStatusCode(status int) ErrorCode {
	return ErrorCode(fmt.Sprintf("HTTP_%d", status))
}

// DefaultStatusMessage is the message shown for a ledger failure whose body had none
func DefaultStatusMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Invalid request. Please check your input and try again."
	case http.StatusUnauthorized:
		return "Authentication required. Please log in again."
	case http.StatusForbidden:
		return "Access denied. You do not have permission to perform this action."
	case http.StatusNotFound:
		return "Resource not found."
	case http.StatusConflict:
		return "Conflict occurred. The resource may already exist."
	case http.StatusUnprocessableEntity:
		return "Validation failed. Please check your input."
	case http.StatusTooManyRequests:
		return "Too many requests. Please wait and try again."
	case http.StatusInternalServerError:
		return "Server error occurred. Please try again later."
	case http.StatusServiceUnavailable:
		return "Service temporarily unavailable. Please try again later."
	default:
		return "An unexpected error occurred. Please try again."
	}
}
