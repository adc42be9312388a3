// Package grids handles follow-up events for rendered recipe grids
package grids

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/recipe-search/api/types"
)

// RegisterFragmentRoutes registers the routes used by the page script.
// They answer with the re-rendered grid fragment.
func RegisterFragmentRoutes(router gin.IRouter, deps *types.Dependencies) {
	router.POST("/:id/image-failures", PostImageFailureFragment(deps))
	router.POST("/:id/preference", PostPreferenceFragment(deps))
}

// RegisterRoutes registers the JSON grid routes
func RegisterRoutes(router gin.IRouter, deps *types.Dependencies) {
	router.GET("/:id", Get(deps))
	router.POST("/:id/image-failures", PostImageFailure(deps))
	router.PUT("/:id/preference", PutPreference(deps))
	router.POST("/:id/show-all", PostShowAll(deps))
}
