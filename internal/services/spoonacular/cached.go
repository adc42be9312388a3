package spoonacular

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/killallgit/recipe-search/internal/models"
	"github.com/killallgit/recipe-search/internal/services/cache"
	"github.com/killallgit/recipe-search/pkg/logger"
)

const (
	// DefaultSearchTTL is how long a search result stays fresh
	DefaultSearchTTL = time.Hour
	// DefaultRecipeTTL is how long a recipe information record stays fresh
	DefaultRecipeTTL = 24 * time.Hour
)

// CachedClient serves repeat requests from a cache. Only successful responses
// are stored.
type CachedClient struct {
	next      RecipeClient
	cache     cache.Cache
	keys      CacheKeyGenerator
	searchTTL time.Duration
	recipeTTL time.Duration
	log       *zap.Logger
}

// NewCachedClient wraps next with cache. Zero TTLs take the defaults.
func NewCachedClient(next RecipeClient, c cache.Cache, searchTTL, recipeTTL time.Duration, log *zap.Logger) *CachedClient {
	if searchTTL == 0 {
		searchTTL = DefaultSearchTTL
	}
	if recipeTTL == 0 {
		recipeTTL = DefaultRecipeTTL
	}
	log = logger.OrNop(log)
	return &CachedClient{
		next:      next,
		cache:     c,
		keys:      NewKeyGenerator(""),
		searchTTL: searchTTL,
		recipeTTL: recipeTTL,
		log:       log.Named("spoonacular.cache"),
	}
}

// Search returns a cached search result or fetches and stores a fresh one
func (c *CachedClient) Search(ctx context.Context, params models.SearchParameters) (*models.SearchResponse, error) {
	key := c.keys.Search(params)

	var cached models.SearchResponse
	if c.lookup(ctx, endpointSearch, key, &cached) {
		return &cached, nil
	}

	resp, err := c.next.Search(ctx, params)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, resp, c.searchTTL)
	return resp, nil
}

// GetRecipeByID returns a cached recipe or fetches and stores a fresh one
func (c *CachedClient) GetRecipeByID(ctx context.Context, id int64) (*models.RecipeDetail, error) {
	key := c.keys.RecipeByID(id)

	var cached models.RecipeDetail
	if c.lookup(ctx, endpointRecipe, key, &cached) {
		return &cached, nil
	}

	detail, err := c.next.GetRecipeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, detail, c.recipeTTL)
	return detail, nil
}

func (c *CachedClient) lookup(ctx context.Context, endpoint, key string, out any) bool {
	data, ok := c.cache.Get(ctx, key)
	if !ok {
		responseCache.WithLabelValues(endpoint, "miss").Inc()
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.log.Warn("discarding unreadable cache entry", zap.String("key", key), zap.Error(err))
		_ = c.cache.Delete(ctx, key)
		responseCache.WithLabelValues(endpoint, "miss").Inc()
		return false
	}
	responseCache.WithLabelValues(endpoint, "hit").Inc()
	return true
}

func (c *CachedClient) store(ctx context.Context, key string, value any, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("failed to encode response for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.cache.Set(ctx, key, data, ttl); err != nil {
		c.log.Warn("failed to write cache entry", zap.String("key", key), zap.Error(err))
	}
}
