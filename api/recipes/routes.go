// Package recipes serves the JSON recipe endpoints
package recipes

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/recipe-search/api/types"
)

// RegisterRoutes registers the recipe routes
func RegisterRoutes(router gin.IRouter, deps *types.Dependencies) {
	router.GET("/recipes/search", Search(deps))
	router.GET("/recipes/:id", GetByID(deps))
	router.GET("/filters", GetFilters(deps))
}
