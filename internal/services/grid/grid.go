// Package grid holds the per-page recipe grid: which recipes are visible given
// the visitor's image preference and the images that failed to load.
package grid

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/killallgit/recipe-search/internal/models"
	"github.com/killallgit/recipe-search/internal/services/preferences"
	"github.com/killallgit/recipe-search/pkg/logger"
)

// DefaultHideWithoutImage applies when no usable stored preference exists
const DefaultHideWithoutImage = true

// State is the render state of a grid
type State string

const (
	StateCards     State = "cards"
	StateNoResults State = "no_results"
	StateAllHidden State = "all_hidden"
)

// View is a snapshot of everything needed to render a grid
type View struct {
	GridID           string  `json:"grid_id"`
	State            State   `json:"state"`
	Cards            []*Card `json:"-"`
	HideWithoutImage bool    `json:"hide_without_image"`
	HiddenCount      int     `json:"hidden_count"`
	TotalCount       int     `json:"total_count"`
}

// ShowHiddenCount reports whether the hidden-recipe count should be displayed
func (v View) ShowHiddenCount() bool {
	return v.HideWithoutImage && v.HiddenCount > 0
}

// Recipes returns the visible recipe summaries in display order
func (v View) Recipes() []models.RecipeSummary {
	out := make([]models.RecipeSummary, 0, len(v.Cards))
	for _, c := range v.Cards {
		out = append(out, c.Recipe)
	}
	return out
}

// Grid is one activated recipe grid. The recipe list is fixed for the life of
// the grid; a new search result produces a new grid.
type Grid struct {
	id      string
	recipes []models.RecipeSummary
	cards   map[int64]*Card
	store   preferences.Store
	log     *zap.Logger

	mu               sync.RWMutex
	hideWithoutImage bool
	failedIDs        map[int64]struct{}
	lastAccess       time.Time
}

// Activate creates a grid over recipes and reads the stored image preference once.
// Read failures, missing values and malformed values all fall back to
// DefaultHideWithoutImage.
func Activate(ctx context.Context, id string, recipes []models.RecipeSummary, store preferences.Store, log *zap.Logger) *Grid {
	log = logger.OrNop(log)

	g := &Grid{
		id:               id,
		recipes:          recipes,
		cards:            make(map[int64]*Card, len(recipes)),
		store:            store,
		log:              log.With(zap.String("grid_id", id)),
		hideWithoutImage: DefaultHideWithoutImage,
		failedIDs:        make(map[int64]struct{}),
		lastAccess:       time.Now(),
	}

	for _, r := range recipes {
		if _, exists := g.cards[r.ID]; !exists {
			g.cards[r.ID] = NewCard(r, g.ReportImageFailure)
		}
	}

	if store != nil {
		value, ok, err := preferences.ReadBool(ctx, store, models.HideRecipesWithoutImageKey)
		switch {
		case err != nil:
			g.log.Warn("failed to read image preference, using default", zap.Error(err))
		case ok:
			g.hideWithoutImage = value
		}
	}

	return g
}

// ID returns the grid identifier
func (g *Grid) ID() string {
	return g.id
}

// HideWithoutImage returns the current preference value
func (g *Grid) HideWithoutImage() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.hideWithoutImage
}

// Card returns the card for a recipe in this grid
func (g *Grid) Card(recipeID int64) (*Card, bool) {
	c, ok := g.cards[recipeID]
	return c, ok
}

// TogglePreference sets the preference and persists it before returning.
// Persistence errors are logged and dropped; the in-memory value still changes.
func (g *Grid) TogglePreference(ctx context.Context, next bool) {
	g.mu.Lock()
	g.hideWithoutImage = next
	g.lastAccess = time.Now()
	g.mu.Unlock()

	if g.store == nil {
		return
	}

	if err := preferences.WriteBool(ctx, g.store, models.HideRecipesWithoutImageKey, next); err != nil {
		preferenceWrites.WithLabelValues("error").Inc()
		g.log.Error("failed to persist image preference", zap.Bool("value", next), zap.Error(err))
		return
	}
	preferenceWrites.WithLabelValues("ok").Inc()
}

// ShowAll is the single action offered when every recipe is hidden
func (g *Grid) ShowAll(ctx context.Context) {
	g.TogglePreference(ctx, false)
}

// ReportImageFailure adds recipeID to the failed set. Repeated reports are no-ops.
func (g *Grid) ReportImageFailure(recipeID int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.lastAccess = time.Now()
	if _, seen := g.failedIDs[recipeID]; seen {
		return
	}
	g.failedIDs[recipeID] = struct{}{}
	imageFailures.Inc()
	g.log.Debug("recipe image failed", zap.Int64("recipe_id", recipeID))
}

// FailedCount returns the size of the failed image set
func (g *Grid) FailedCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.failedIDs)
}

// Visible returns the recipes to display, in input order.
// With the preference off the input is returned unchanged.
func (g *Grid) Visible() []models.RecipeSummary {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.visibleLocked()
}

func (g *Grid) visibleLocked() []models.RecipeSummary {
	if !g.hideWithoutImage {
		return g.recipes
	}

	out := make([]models.RecipeSummary, 0, len(g.recipes))
	for _, r := range g.recipes {
		if strings.TrimSpace(r.Image) == "" {
			continue
		}
		if _, failed := g.failedIDs[r.ID]; failed {
			continue
		}
		out = append(out, r)
	}
	return out
}

// View derives the render state from the current preference and failed set
func (g *Grid) View() View {
	g.mu.RLock()
	defer g.mu.RUnlock()

	visible := g.visibleLocked()
	v := View{
		GridID:           g.id,
		HideWithoutImage: g.hideWithoutImage,
		HiddenCount:      len(g.recipes) - len(visible),
		TotalCount:       len(g.recipes),
		Cards:            make([]*Card, 0, len(visible)),
	}

	for _, r := range visible {
		v.Cards = append(v.Cards, g.cards[r.ID])
	}

	switch {
	case len(g.recipes) == 0:
		v.State = StateNoResults
	case len(visible) == 0:
		v.State = StateAllHidden
	default:
		v.State = StateCards
	}
	return v
}

func (g *Grid) touch() {
	g.mu.Lock()
	g.lastAccess = time.Now()
	g.mu.Unlock()
}

func (g *Grid) idleSince() time.Time {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.lastAccess
}
