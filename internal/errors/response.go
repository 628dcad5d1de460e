package errors

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrorResponse is the envelope every failed request is answered with
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption customises a response built by NewErrorResponse
type ErrorOption func(*ErrorResponse)

func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage replaces the code's default message
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse builds the envelope for code using its default message
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
		},
	}
	for _, opt := range opts {
		opt(response)
	}
	return response
}

// NewValidationError renders field failures as sorted "field: message" details
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	details := make([]string, 0, len(fieldErrors))
	for field, message := range fieldErrors {
		details = append(details, fmt.Sprintf("%s: %s", field, message))
	}
	sort.Strings(details)

	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// NewSystemError answers an internal failure without revealing its cause.
// Callers log the underlying error themselves.
func NewSystemError(traceID string) *ErrorResponse {
	return NewErrorResponse(SystemInternalError, traceID)
}

var statusByPrefix = map[string]int{
	"VALIDATION": http.StatusBadRequest,
	"CONFLICT":   http.StatusConflict,
}

var statusByCode = map[ErrorCode]int{
	SystemRateLimitExceeded:  http.StatusTooManyRequests,
	SystemServiceUnavailable: http.StatusServiceUnavailable,
}

// GetHTTPStatus maps an error code to its HTTP status. Every *_001 entity code
// outside VALIDATION/CONFLICT/SYSTEM is a not-found; unknown codes are 500.
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	if !IsValidErrorCode(code) {
		return http.StatusInternalServerError
	}

	prefix, _, _ := strings.Cut(string(code), "_")
	if status, ok := statusByPrefix[prefix]; ok {
		return status
	}
	if prefix == "SYSTEM" {
		return http.StatusInternalServerError
	}
	return http.StatusNotFound
}

func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}
