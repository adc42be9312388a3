package grid

import (
	"sync"

	"github.com/killallgit/recipe-search/internal/models"
)

// Card is the display state of one recipe within a grid.
// Once its image has failed it shows a placeholder for the rest of its life.
type Card struct {
	Recipe models.RecipeSummary

	onImageError func(recipeID int64)

	mu     sync.RWMutex
	failed bool
}

// NewCard creates a card. onImageError may be nil.
func NewCard(recipe models.RecipeSummary, onImageError func(recipeID int64)) *Card {
	return &Card{Recipe: recipe, onImageError: onImageError}
}

// ImageError records a failed image load and notifies the owner with the recipe id.
// The owner is notified on every call; de-duplication is the owner's concern.
func (c *Card) ImageError() {
	c.mu.Lock()
	c.failed = true
	c.mu.Unlock()

	if c.onImageError != nil {
		c.onImageError(c.Recipe.ID)
	}
}

// ImageFailed reports whether this card has seen an image failure
func (c *Card) ImageFailed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.failed
}

// ShowPlaceholder reports whether the card renders the "No image" placeholder
// instead of an image element
func (c *Card) ShowPlaceholder() bool {
	return c.ImageFailed() || !c.Recipe.HasImage()
}
