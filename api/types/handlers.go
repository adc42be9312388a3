package types

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/recipe-search/internal/services/spoonacular"
	apperrors "github.com/killallgit/recipe-search/pkg/errors"
)

// Context keys set by the global middleware
const (
	SessionKey   = "session_id"
	RequestIDKey = "request_id"
)

// SessionID returns the visitor session assigned by the session middleware
func SessionID(c *gin.Context) string {
	return c.GetString(SessionKey)
}

// ParseInt64Param extracts and parses a URL parameter as int64
// Returns the parsed value and sends error response if parsing fails
func ParseInt64Param(c *gin.Context, paramName string) (int64, bool) {
	value, err := strconv.ParseInt(c.Param(paramName), 10, 64)
	if err != nil || value <= 0 {
		SendBadRequest(c, "Invalid "+paramName)
		return 0, false
	}
	return value, true
}

// BindJSONOrError attempts to bind JSON request body to target struct
// Returns false and sends error response if binding fails
func BindJSONOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  StatusError,
			Message: "Invalid request body",
			Error:   string(apperrors.ErrCodeValidation),
			Details: err.Error(),
		})
		return false
	}
	return true
}

// LocalPath returns raw when it is a path on this site, otherwise "/"
func LocalPath(raw string) string {
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return "/"
	}
	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "/"
	}
	return u.RequestURI()
}

// SendBadRequest sends a standardized bad request response
func SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Status: StatusError, Message: message})
}

// SendNotFound sends a standardized not found response
func SendNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Status: StatusError, Message: message})
}

// SendInternalError sends a standardized internal server error response
func SendInternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Status: StatusError, Message: message})
}

// SendSuccess sends a standardized success response with data
func SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SendError maps a service error to a JSON error response. Upstream details
// are not exposed.
func SendError(c *gin.Context, err error) {
	status, code := apperrors.GetHTTPCode(err), apperrors.GetCode(err)

	switch {
	case spoonacular.IsNotFound(err):
		status, code = http.StatusNotFound, apperrors.ErrCodeNotFound
	case spoonacular.IsRateLimited(err):
		status, code = http.StatusTooManyRequests, apperrors.ErrCodeAPIRateLimit
	}

	c.JSON(status, ErrorResponse{
		Status:  StatusError,
		Message: http.StatusText(status),
		Error:   string(code),
	})
}
