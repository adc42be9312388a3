package api

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/recipe-search/api/grids"
	"github.com/killallgit/recipe-search/api/health"
	"github.com/killallgit/recipe-search/api/pages"
	"github.com/killallgit/recipe-search/api/recipes"
	"github.com/killallgit/recipe-search/api/types"
	"github.com/killallgit/recipe-search/api/version"
	_ "github.com/killallgit/recipe-search/docs/swagger"
	"github.com/killallgit/recipe-search/internal/web"
	"github.com/killallgit/recipe-search/pkg/config"
)

// RegisterRoutes registers all routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, cfg *config.Config, info version.Info, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) {
	// Public routes (no session, no rate limiting)
	health.RegisterRoutes(engine, deps, info.Version)
	version.RegisterRoutes(engine, info)

	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	engine.Group("/docs").GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if cfg.Monitoring.Enabled {
		engine.GET(cfg.Monitoring.MetricsPath, gin.WrapH(promhttp.Handler()))
	}

	engine.NoRoute(NotFoundHandler())

	site := engine.Group("/")
	site.Use(Session(cfg.Session.CookieName, cfg.Session.MaxAge, cfg.Session.Secure))

	// Grid events only touch in-process state and arrive in bursts, one per
	// broken image, so they are never rate limited
	grids.RegisterFragmentRoutes(site.Group("/grids"), deps)
	grids.RegisterRoutes(site.Group("/api/v1/grids"), deps)

	// Searches and recipe lookups reach the upstream API, so visitor
	// traffic is limited per client
	limited := site.Group("")
	if cfg.RateLimiting.Enabled {
		limited.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, float64(cfg.RateLimiting.RPS), cfg.RateLimiting.Burst))
	}

	pages.RegisterRoutes(limited, deps)
	recipes.RegisterRoutes(limited.Group("/api/v1"), deps)
}

// NotFoundHandler answers JSON under /api and the not-found page elsewhere
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  types.StatusError,
				"message": "The requested endpoint was not found",
				"path":    c.Request.URL.Path,
			})
			return
		}
		c.HTML(http.StatusNotFound, web.NotFoundTemplate, web.NotFoundPage{Title: "Not found"})
	}
}
