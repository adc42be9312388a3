package spoonacular

import (
	"fmt"

	"github.com/killallgit/recipe-search/internal/models"
)

// DefaultKeyGenerator implements CacheKeyGenerator with a consistent key format
type DefaultKeyGenerator struct {
	prefix string
}

// NewKeyGenerator creates a new key generator with an optional prefix
func NewKeyGenerator(prefix string) CacheKeyGenerator {
	if prefix == "" {
		prefix = "spoonacular"
	}
	return &DefaultKeyGenerator{prefix: prefix}
}

// Search keys on the encoded query, which is sorted by parameter name
func (g *DefaultKeyGenerator) Search(params models.SearchParameters) string {
	return fmt.Sprintf("%s:search:%s", g.prefix, params.Values().Encode())
}

// RecipeByID generates a cache key for a recipe information record
func (g *DefaultKeyGenerator) RecipeByID(id int64) string {
	return fmt.Sprintf("%s:recipe:%d", g.prefix, id)
}
