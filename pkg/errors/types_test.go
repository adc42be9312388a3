package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NotFound("recipe", 7), http.StatusNotFound},
		{"validation", ValidationError("cuisine", "unknown option"), http.StatusBadRequest},
		{"external", ExternalServiceError("spoonacular", stderrors.New("boom")), http.StatusBadGateway},
		{"malformed", MalformedResponseError("spoonacular", stderrors.New("eof")), http.StatusBadGateway},
		{"config required", ConfigRequired("spoonacular.api_key"), http.StatusServiceUnavailable},
		{"plain error", stderrors.New("plain"), http.StatusInternalServerError},
		{"wrapped app error", fmt.Errorf("context: %w", NotFound("grid", "x")), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPCode(tt.err))
		})
	}
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("search: %w", ConfigRequired("spoonacular.api_key"))

	assert.True(t, Is(err, ErrCodeConfigRequired))
	assert.False(t, Is(err, ErrCodeNotFound))
	assert.False(t, Is(stderrors.New("plain"), ErrCodeInternal))
	assert.Equal(t, ErrCodeConfigRequired, GetCode(err))
	assert.Equal(t, ErrCodeInternal, GetCode(stderrors.New("x")))
}

func TestAppError_Error(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := ExternalServiceError("spoonacular", cause)

	assert.Contains(t, err.Error(), "EXTERNAL_SERVICE")
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "spoonacular", err.Details["service"])
}

func TestConfigRequired_DoesNotLeakValue(t *testing.T) {
	err := ConfigRequired("spoonacular.api_key")
	assert.NotContains(t, err.Error(), "=")
	assert.Equal(t, "spoonacular.api_key", err.Details["key"])
}

func TestNotFound_Details(t *testing.T) {
	err := NotFound("recipe", 716429)
	assert.Equal(t, "recipe not found", err.Message)
	assert.Equal(t, map[string]string{"resource": "recipe", "id": "716429"}, err.Details)
}

func TestAppError_UnknownCodeIsInternal(t *testing.T) {
	err := &AppError{Code: ErrorCode("SOMETHING_ELSE"), Message: "x"}
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, http.StatusTooManyRequests, (&AppError{Code: ErrCodeAPIRateLimit}).HTTPCode())
}
