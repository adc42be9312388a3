package health

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/recipe-search/api/types"
)

// RegisterRoutes registers health check routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, version string) {
	engine.GET("/health", Get(deps, version))
}
