package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode represents a structured error code
type ErrorCode string

const (
	ErrCodeConfigRequired    ErrorCode = "CONFIG_REQUIRED"
	ErrCodeNotFound          ErrorCode = "NOT_FOUND"
	ErrCodeValidation        ErrorCode = "VALIDATION"
	ErrCodeExternalService   ErrorCode = "EXTERNAL_SERVICE"
	ErrCodeMalformedResponse ErrorCode = "MALFORMED_RESPONSE"
	ErrCodeAPIRateLimit      ErrorCode = "API_RATE_LIMIT"
	ErrCodeInternal          ErrorCode = "INTERNAL"
)

var httpCodes = map[ErrorCode]int{
	ErrCodeConfigRequired:    http.StatusServiceUnavailable,
	ErrCodeNotFound:          http.StatusNotFound,
	ErrCodeValidation:        http.StatusBadRequest,
	ErrCodeExternalService:   http.StatusBadGateway,
	ErrCodeMalformedResponse: http.StatusBadGateway,
	ErrCodeAPIRateLimit:      http.StatusTooManyRequests,
}

// AppError is an error carrying a code that maps onto an HTTP status.
// Details must never hold secrets; they may be rendered to clients.
type AppError struct {
	Code    ErrorCode         `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
	Cause   error             `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// HTTPCode returns the status for the error's code
func (e *AppError) HTTPCode() int {
	if status, ok := httpCodes[e.Code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func newError(code ErrorCode, cause error, message string, details ...string) *AppError {
	e := &AppError{Code: code, Message: message, Cause: cause}
	for i := 0; i+1 < len(details); i += 2 {
		if e.Details == nil {
			e.Details = make(map[string]string)
		}
		e.Details[details[i]] = details[i+1]
	}
	return e
}

// NotFound reports a missing resource
func NotFound(resource string, id any) *AppError {
	return newError(ErrCodeNotFound, nil, resource+" not found",
		"resource", resource, "id", fmt.Sprint(id))
}

// ValidationError reports a rejected input field
func ValidationError(field, reason string) *AppError {
	return newError(ErrCodeValidation, nil,
		fmt.Sprintf("validation failed for field '%s': %s", field, reason),
		"field", field, "reason", reason)
}

// ExternalServiceError wraps a failed call to an upstream service
func ExternalServiceError(service string, cause error) *AppError {
	return newError(ErrCodeExternalService, cause,
		fmt.Sprintf("external service '%s' error", service), "service", service)
}

// MalformedResponseError reports an upstream body that could not be decoded
func MalformedResponseError(service string, cause error) *AppError {
	return newError(ErrCodeMalformedResponse, cause,
		fmt.Sprintf("malformed response from '%s'", service), "service", service)
}

// ConfigRequired reports a missing setting. Only the key is recorded.
func ConfigRequired(key string) *AppError {
	return newError(ErrCodeConfigRequired, nil,
		fmt.Sprintf("configuration '%s' is required", key), "key", key)
}

// Is reports whether any error in err's chain is an AppError with the given code
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr) && appErr.Code == code
}

// GetCode extracts the error code from an error, defaulting to ErrCodeInternal
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}

// GetHTTPCode extracts the HTTP status code from an error
func GetHTTPCode(err error) int {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.HTTPCode()
	}
	return http.StatusInternalServerError
}
