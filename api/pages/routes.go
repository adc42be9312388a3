// Package pages serves the server-rendered search and recipe pages
package pages

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/recipe-search/api/types"
)

// RegisterRoutes registers the HTML page routes
func RegisterRoutes(router gin.IRouter, deps *types.Dependencies) {
	router.GET("/", GetSearch(deps))
	router.POST("/search", PostSearch(deps))
	router.GET("/recipe/:id", GetRecipe(deps))
	router.POST("/preferences", PostPreferences(deps))
}
