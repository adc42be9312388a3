package search

import (
	"net/url"

	"go.uber.org/zap"

	"github.com/killallgit/recipe-search/internal/models"
	"github.com/killallgit/recipe-search/pkg/logger"
)

// Orchestrator is the single writer of navigational search parameters
type Orchestrator struct {
	log *zap.Logger
}

// NewOrchestrator creates a new search orchestrator
func NewOrchestrator(log *zap.Logger) *Orchestrator {
	log = logger.OrNop(log)
	return &Orchestrator{log: log.Named("search")}
}

// Navigate returns the location that displays params on path. Empty and zero
// fields are dropped and any query already on path is replaced.
func (o *Orchestrator) Navigate(path string, params models.SearchParameters) string {
	u, err := url.Parse(path)
	if err != nil || u.IsAbs() || u.Host != "" {
		u = &url.URL{Path: "/"}
	}
	u.RawQuery = params.Values().Encode()
	u.Fragment = ""

	location := u.String()
	o.log.Debug("search navigation", zap.String("location", location))
	return location
}
