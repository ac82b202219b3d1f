package errors

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func allCodes() []ErrorCode {
	return []ErrorCode{
		AuthInvalidCredentials,
		AuthMissingSession,
		AuthExpiredToken,
		AuthInvalidTokenFormat,
		ValidationGeneral,
		ValidationRequiredField,
		ValidationInvalidFormat,
		ValidationOutOfRange,
		ValidationInvalidAmount,
		ValidationBelowMinimum,
		ValidationInvalidDate,
		AccountNotFound,
		AccountInactive,
		AccountInsufficientBalance,
		AccountInvalidType,
		TransactionFailed,
		TransactionInvalidType,
		TransactionMissingRecipient,
		TransactionSameAccount,
		LimitExceeded,
		LimitInvalidCategory,
		BeneficiaryNotFound,
		BeneficiaryInvalid,
		NetworkUnavailable,
		NetworkInvalidReply,
		SystemInternalError,
		SystemStorageError,
		SystemServiceUnavailable,
		SystemConfigurationError,
		SystemUnexpectedError,
		SystemRateLimitExceeded,
	}
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Auth Invalid Credentials",
			code:     AuthInvalidCredentials,
			expected: "Invalid username or password",
		},
		{
			name:     "Account Insufficient Balance",
			code:     AccountInsufficientBalance,
			expected: "Insufficient balance",
		},
		{
			name:     "Limit Exceeded",
			code:     LimitExceeded,
			expected: "Daily limit exceeded",
		},
		{
			name:     "Network Unavailable",
			code:     NetworkUnavailable,
			expected: "Network error occurred. Please check your connection and try again.",
		},
		{
			name:     "System Internal Error",
			code:     SystemInternalError,
			expected: "An unexpected error occurred. Please contact support with trace ID",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			message := GetErrorMessage(tc.code)
			s.Equal(tc.expected, message)
		})
	}
}

// TestGetErrorMessage_InvalidCode tests getting message for invalid error code
func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	message := GetErrorMessage("INVALID_CODE")
	s.Equal("An error occurred", message)
}

// TestIsValidErrorCode_ValidCodes tests validation of valid error codes
func (s *CodesTestSuite) TestIsValidErrorCode_ValidCodes() {
	for _, code := range allCodes() {
		s.Run(string(code), func() {
			s.True(IsValidErrorCode(code), "Expected %s to be valid", code)
		})
	}
}

// TestIsValidErrorCode_InvalidCode tests validation of invalid error code
func (s *CodesTestSuite) TestIsValidErrorCode_InvalidCode() {
	invalidCodes := []ErrorCode{
		"INVALID_001",
		"HTTP_500",
		"",
		"AUTH_999",
	}

	for _, code := range invalidCodes {
		s.Run(string(code), func() {
			s.False(IsValidErrorCode(code), "Expected %s to be invalid", code)
		})
	}
}

// TestErrorCodeConstants_Uniqueness ensures all error codes are unique
func (s *CodesTestSuite) TestErrorCodeConstants_Uniqueness() {
	seen := make(map[ErrorCode]bool)
	for _, code := range allCodes() {
		s.False(seen[code], "Duplicate error code found: %s", code)
		seen[code] = true
	}
}

// TestErrorCodeConstants_Format ensures all error codes follow naming convention
func (s *CodesTestSuite) TestErrorCodeConstants_Format() {
	prefixes := []string{"AUTH_", "VALIDATION_", "ACCOUNT_", "TRANSACTION_", "LIMIT_", "BENEFICIARY_", "NETWORK_", "SYSTEM_"}

	for _, code := range allCodes() {
		matched := false
		for _, prefix := range prefixes {
			if strings.HasPrefix(string(code), prefix) {
				matched = true
				break
			}
		}
		s.True(matched, "Error code %s has an unknown prefix", code)
	}
}

// TestAllErrorCodesHaveMessages ensures every error code has a message
func (s *CodesTestSuite) TestAllErrorCodesHaveMessages() {
	for _, code := range allCodes() {
		s.Run(string(code), func() {
			message := GetErrorMessage(code)
			s.NotEmpty(message, "Error code %s should have a message", code)
			s.NotEqual("An error occurred", message, "Error code %s should have a specific message", code)
		})
	}
}

func (s *CodesTestSuite) TestHTTPStatusCode() {
	s.Equal(ErrorCode("HTTP_404"), HTTPStatusCode(http.StatusNotFound))
	s.Equal(ErrorCode("HTTP_503"), HTTPStatusCode(http.StatusServiceUnavailable))
}

func (s *CodesTestSuite) TestDefaultStatusMessage() {
	testCases := []struct {
		status   int
		expected string
	}{
		{http.StatusBadRequest, "Invalid request. Please check your input and try again."},
		{http.StatusUnauthorized, "Authentication required. Please log in again."},
		{http.StatusNotFound, "Resource not found."},
		{http.StatusTooManyRequests, "Too many requests. Please wait and try again."},
		{http.StatusInternalServerError, "Server error occurred. Please try again later."},
		{http.StatusTeapot, "An unexpected error occurred. Please try again."},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, DefaultStatusMessage(tc.status), "status %d", tc.status)
	}
}
