package spoonacular

import (
	"context"

	"github.com/killallgit/recipe-search/internal/models"
)

// RecipeClient is the read-only recipe data source used by the web layer
type RecipeClient interface {
	// Search runs a recipe search. Empty parameters are not sent upstream.
	Search(ctx context.Context, params models.SearchParameters) (*models.SearchResponse, error)

	// GetRecipeByID fetches the full information record for one recipe
	GetRecipeByID(ctx context.Context, id int64) (*models.RecipeDetail, error)
}

// CacheKeyGenerator builds cache keys for upstream responses
type CacheKeyGenerator interface {
	Search(params models.SearchParameters) string
	RecipeByID(id int64) string
}
