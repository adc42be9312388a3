package spoonacular

import (
	"errors"
	"fmt"
	"net/http"
)

// ServiceName identifies the upstream in structured errors
const ServiceName = "spoonacular"

// APIError is returned when the upstream answers with a non-200 status
type APIError struct {
	Endpoint   string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("spoonacular %s: API request failed with status %d", e.Endpoint, e.StatusCode)
}

// IsNotFound reports whether err is an upstream 404
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsRateLimited reports whether err is an upstream quota rejection
func IsRateLimited(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	// 402 is returned once the daily point quota is used up
	return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode == http.StatusPaymentRequired
}
