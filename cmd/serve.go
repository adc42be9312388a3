package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/killallgit/recipe-search/api"
	"github.com/killallgit/recipe-search/api/types"
	"github.com/killallgit/recipe-search/internal/database"
	"github.com/killallgit/recipe-search/internal/services/cache"
	"github.com/killallgit/recipe-search/internal/services/cleanup"
	"github.com/killallgit/recipe-search/internal/services/grid"
	"github.com/killallgit/recipe-search/internal/services/preferences"
	"github.com/killallgit/recipe-search/internal/services/results"
	"github.com/killallgit/recipe-search/internal/services/search"
	"github.com/killallgit/recipe-search/internal/services/spoonacular"
	"github.com/killallgit/recipe-search/pkg/config"
)

const defaultShutdownTimeout = 15 * time.Second

var (
	serverHost   string
	serverPort   int
	databasePath string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the Recipe Search web server with the configured settings.

The Spoonacular API key is read from RECIPES_SPOONACULAR_API_KEY or the
spoonacular.api_key setting. Without it every search shows the error state.

Example:
  recipe-search serve
  recipe-search serve --port 9090
  recipe-search serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
	serveCmd.Flags().StringVar(&databasePath, "database", "", "SQLite database path (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := newLogger(cmd, cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	host, port := cfg.Server.Host, cfg.Server.Port
	if serverHost != "" {
		host = serverHost
	}
	if serverPort != 0 {
		port = serverPort
	}
	if databasePath != "" {
		cfg.Database.Path = databasePath
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, closeDeps := buildDependencies(ctx, cfg, log)
	defer closeDeps()

	server := api.NewServer(fmt.Sprintf("%s:%d", host, port), log)
	server.SetDependencies(deps)
	server.SetVersion(buildInfo())
	if err := server.Initialize(cfg); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(server.Start)

	if cfg.Grid.SweepInterval > 0 {
		g.Go(func() error {
			deps.Grids.Run(gctx, cfg.Grid.SweepInterval)
			return nil
		})
	}

	pruner := cleanup.NewService(deps.Preferences, cfg.Session.MaxAge, cfg.Session.CleanupInterval, log)
	g.Go(func() error {
		pruner.Run(gctx)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")

		timeout := cfg.Server.ShutdownTimeout
		if timeout <= 0 {
			timeout = defaultShutdownTimeout
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// buildDependencies wires the services behind the HTTP handlers. The returned
// cleanup closes the database and the cache.
func buildDependencies(ctx context.Context, cfg *config.Config, log *zap.Logger) (*types.Dependencies, func()) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	deps := &types.Dependencies{
		Orchestrator:  search.NewOrchestrator(log),
		Grids:         grid.NewRegistry(cfg.Grid.IdleTimeout, log),
		FilterOptions: spoonacular.FilterOptions(),
		Log:           log,
	}

	// Preferences fall back to process memory when the database is unusable
	var repo preferences.Repository
	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose, log)
	if err == nil {
		err = db.Migrate()
		if err != nil {
			_ = db.Close()
		}
	}
	if err != nil {
		log.Warn("database unavailable, preferences will not survive a restart",
			zap.String("path", cfg.Database.Path), zap.Error(err))
		repo = preferences.NewMemoryRepository()
	} else {
		deps.DB = db
		closers = append(closers, func() { _ = db.Close() })
		repo = preferences.NewRepository(db.DB)
	}
	deps.Preferences = preferences.NewService(repo, log)

	var recipes spoonacular.RecipeClient = spoonacular.NewClient(spoonacular.Config{
		APIKey:    cfg.Spoonacular.APIKey,
		BaseURL:   cfg.Spoonacular.BaseURL,
		UserAgent: cfg.Spoonacular.UserAgent,
		Timeout:   cfg.Spoonacular.Timeout,

		RequestsPerMinute: cfg.Spoonacular.RequestsPerMinute,
	}, log)

	if cfg.Cache.Enabled {
		c, err := cache.New(ctx, cfg.Cache, cfg.Redis, log)
		if err != nil {
			log.Warn("cache backend unavailable, using in-memory cache",
				zap.String("backend", cfg.Cache.Backend), zap.Error(err))
			c = cache.NewMemoryCache(cfg.Cache.MaxSizeMB)
		}
		closers = append(closers, func() { _ = c.Close() })
		deps.Cache = c
		recipes = spoonacular.NewCachedClient(recipes, c, cfg.Cache.SearchTTL, cfg.Cache.RecipeTTL, log)
	}

	deps.Recipes = recipes
	deps.Results = results.NewRenderer(recipes, log)

	return deps, cleanup
}
