package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/recipe-search/api/types"
	"github.com/killallgit/recipe-search/internal/services/cache"
)

const (
	statusHealthy       = "healthy"
	statusUnhealthy     = "unhealthy"
	statusNotConfigured = "not configured"
)

// pinger is implemented by cache backends with a remote connection
type pinger interface {
	Ping(ctx context.Context) error
}

// Get handles health check requests
// @Summary Health check
// @Description Reports the status of the database and the response cache
// @Tags health
// @Produce json
// @Success 200 {object} types.HealthResponse
// @Failure 503 {object} types.HealthResponse
// @Router /health [get]
func Get(deps *types.Dependencies, version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		services := map[string]interface{}{
			"database": getDatabaseStatus(ctx, deps),
			"cache":    getCacheStatus(ctx, deps),
		}
		grids := 0
		if deps != nil && deps.Grids != nil {
			grids = deps.Grids.Len()
		}
		services["grids"] = gin.H{"active": grids}

		response := types.HealthResponse{
			BaseResponse: types.BaseResponse{Status: statusHealthy, Message: "Service is running"},
			Version:      version,
			Timestamp:    time.Now().UTC().Format(time.RFC3339),
			Services:     services,
		}

		code := http.StatusOK
		for _, name := range []string{"database", "cache"} {
			if services[name].(gin.H)["status"] == statusUnhealthy {
				code = http.StatusServiceUnavailable
				response.Status = statusUnhealthy
				response.Message = name + " is unavailable"
			}
		}

		c.JSON(code, response)
	}
}

// getDatabaseStatus returns the database connection status
func getDatabaseStatus(ctx context.Context, deps *types.Dependencies) gin.H {
	if deps == nil || deps.DB == nil || deps.DB.DB == nil {
		return gin.H{"status": statusNotConfigured}
	}

	if err := deps.DB.HealthCheck(ctx); err != nil {
		return gin.H{"status": statusUnhealthy, "error": err.Error()}
	}

	return gin.H{"status": statusHealthy}
}

// getCacheStatus returns the response cache status and, for in-process
// caches, its hit statistics
func getCacheStatus(ctx context.Context, deps *types.Dependencies) gin.H {
	if deps == nil || deps.Cache == nil {
		return gin.H{"status": statusNotConfigured}
	}

	status := gin.H{"status": statusHealthy}

	if p, ok := deps.Cache.(pinger); ok {
		if err := p.Ping(ctx); err != nil {
			return gin.H{"status": statusUnhealthy, "error": err.Error()}
		}
	}

	if sp, ok := deps.Cache.(cache.StatsProvider); ok {
		stats := sp.Stats()
		status["hits"] = stats.Hits
		status["misses"] = stats.Misses
		status["items"] = stats.Items
	}

	return status
}
