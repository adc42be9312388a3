package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Info describes the running build
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
}

// Get handles version requests
// @Summary Version
// @Description Returns the service name and build information
// @Tags version
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /version [get]
func Get(info Info) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Recipe Search",
			"version":     info.Version,
			"git_commit":  info.GitCommit,
			"build_time":  info.BuildTime,
			"description": "Recipe search with filters, recipe details and image-aware result grids",
			"status":      "running",
		})
	}
}
