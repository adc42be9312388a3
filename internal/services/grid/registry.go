package grid

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/killallgit/recipe-search/internal/models"
	"github.com/killallgit/recipe-search/internal/services/preferences"
	"github.com/killallgit/recipe-search/pkg/logger"
)

// ErrGridNotFound is returned when a grid id is unknown or has been evicted
var ErrGridNotFound = errors.New("grid not found")

// Registry holds the active grids so follow-up events reach the grid that
// rendered the page
type Registry struct {
	idleTimeout time.Duration
	log         *zap.Logger

	mu    sync.RWMutex
	grids map[string]*Grid
}

// NewRegistry creates a registry that evicts grids idle for longer than idleTimeout
func NewRegistry(idleTimeout time.Duration, log *zap.Logger) *Registry {
	log = logger.OrNop(log)
	return &Registry{
		idleTimeout: idleTimeout,
		log:         log.Named("grid"),
		grids:       make(map[string]*Grid),
	}
}

// Activate creates, registers and returns a new grid over recipes
func (r *Registry) Activate(ctx context.Context, recipes []models.RecipeSummary, store preferences.Store) *Grid {
	g := Activate(ctx, uuid.NewString(), recipes, store, r.log)

	r.mu.Lock()
	r.grids[g.ID()] = g
	n := len(r.grids)
	r.mu.Unlock()

	gridsActive.Set(float64(n))
	return g
}

// Get returns the grid with the given id and marks it as recently used
func (r *Registry) Get(id string) (*Grid, error) {
	r.mu.RLock()
	g, ok := r.grids[id]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrGridNotFound
	}
	g.touch()
	return g, nil
}

// Len returns the number of registered grids
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.grids)
}

// Sweep evicts grids idle since before now minus the idle timeout and
// returns how many were removed
func (r *Registry) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, g := range r.grids {
		if now.Sub(g.idleSince()) > r.idleTimeout {
			delete(r.grids, id)
			evicted++
		}
	}

	if evicted > 0 {
		gridsEvicted.Add(float64(evicted))
		r.log.Debug("evicted idle grids", zap.Int("count", evicted), zap.Int("remaining", len(r.grids)))
	}
	gridsActive.Set(float64(len(r.grids)))
	return evicted
}

// Run sweeps idle grids every interval until ctx is done
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			r.Sweep(now)
		case <-ctx.Done():
			return
		}
	}
}
