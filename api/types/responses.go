package types

import (
	"github.com/killallgit/recipe-search/internal/models"
	"github.com/killallgit/recipe-search/internal/services/grid"
)

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`  // One of the Status constants above
	Message string `json:"message"` // Human-readable message
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// HealthResponse represents the health check response
type HealthResponse struct {
	BaseResponse
	Version   string                 `json:"version,omitempty"`
	Timestamp string                 `json:"timestamp"`
	Services  map[string]interface{} `json:"services,omitempty"`
}

// GridData is a grid snapshot as seen by API clients
type GridData struct {
	grid.View
	Recipes     []models.RecipeSummary `json:"recipes"`
	FailedCount int                    `json:"failed_count"`
}

// NewGridData builds the API representation of g
func NewGridData(g *grid.Grid) GridData {
	view := g.View()
	return GridData{View: view, Recipes: view.Recipes(), FailedCount: g.FailedCount()}
}

// GridResponse wraps a grid snapshot
type GridResponse struct {
	BaseResponse
	Grid GridData `json:"grid"`
}

// RecipeSearchResponse is returned by the JSON search endpoint
type RecipeSearchResponse struct {
	BaseResponse
	TotalResults int                    `json:"total_results"`
	Offset       int                    `json:"offset"`
	Number       int                    `json:"number"`
	Results      []models.RecipeSummary `json:"results"`
	Grid         *GridData              `json:"grid,omitempty"`
}

// RecipeResponse wraps a single recipe
type RecipeResponse struct {
	BaseResponse
	Recipe *models.RecipeDetail `json:"recipe"`
}

// FiltersResponse lists the accepted filter values
type FiltersResponse struct {
	BaseResponse
	Filters models.FilterOptions `json:"filters"`
}
