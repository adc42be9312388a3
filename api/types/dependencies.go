package types

import (
	"go.uber.org/zap"

	"github.com/killallgit/recipe-search/internal/database"
	"github.com/killallgit/recipe-search/internal/models"
	"github.com/killallgit/recipe-search/internal/services/cache"
	"github.com/killallgit/recipe-search/internal/services/grid"
	"github.com/killallgit/recipe-search/internal/services/preferences"
	"github.com/killallgit/recipe-search/internal/services/results"
	"github.com/killallgit/recipe-search/internal/services/search"
	"github.com/killallgit/recipe-search/internal/services/spoonacular"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB            *database.DB
	Cache         cache.Cache
	Recipes       spoonacular.RecipeClient
	Preferences   *preferences.Service
	Grids         *grid.Registry
	Orchestrator  *search.Orchestrator
	Results       *results.Renderer
	FilterOptions models.FilterOptions
	Log           *zap.Logger
}

// Logger returns the handler logger, never nil
func (d *Dependencies) Logger() *zap.Logger {
	if d == nil || d.Log == nil {
		return zap.NewNop()
	}
	return d.Log
}
