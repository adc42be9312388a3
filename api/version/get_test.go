package version

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		info           Info
		expectedStatus int
		expectedBody   map[string]interface{}
	}{
		{
			name:           "successful version request",
			info:           Info{Version: "1.0.0", GitCommit: "abc123"},
			expectedStatus: http.StatusOK,
			expectedBody: map[string]interface{}{
				"name":       "Recipe Search",
				"version":    "1.0.0",
				"git_commit": "abc123",
				"status":     "running",
			},
		},
		{
			name:           "development build",
			info:           Info{Version: "dev"},
			expectedStatus: http.StatusOK,
			expectedBody: map[string]interface{}{
				"version":    "dev",
				"git_commit": "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Get(tt.info)(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

			for key, expectedValue := range tt.expectedBody {
				assert.Equal(t, expectedValue, response[key], "Key: %s", key)
			}
		})
	}
}
