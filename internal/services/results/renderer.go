// Package results decides what the results area of the search page shows
package results

import (
	"context"

	"go.uber.org/zap"

	"github.com/killallgit/recipe-search/internal/models"
	"github.com/killallgit/recipe-search/internal/services/spoonacular"
	"github.com/killallgit/recipe-search/pkg/logger"
)

// State is the render state of the results area
type State string

const (
	StatePrompt  State = "prompt"
	StateError   State = "error"
	StateResults State = "results"
)

// ErrorMessage is shown for every search failure
const ErrorMessage = "Something went wrong. Please try again later."

// View is the results area view model
type View struct {
	State        State
	Params       models.SearchParameters
	TotalResults int
	Recipes      []models.RecipeSummary
	Message      string
}

// Renderer runs searches for the results area
type Renderer struct {
	client spoonacular.RecipeClient
	log    *zap.Logger
}

// NewRenderer creates a results renderer
func NewRenderer(client spoonacular.RecipeClient, log *zap.Logger) *Renderer {
	log = logger.OrNop(log)
	return &Renderer{client: client, log: log.Named("results")}
}

// Render returns the prompt state for an empty query without calling the
// client. Search failures are logged and become the error state.
func (r *Renderer) Render(ctx context.Context, params models.SearchParameters) View {
	if !params.HasQuery() {
		return View{State: StatePrompt, Params: params}
	}

	resp, err := r.client.Search(ctx, params)
	if err != nil {
		r.log.Error("failed to fetch recipes",
			zap.String("query", params.Query),
			zap.Error(err),
		)
		return View{State: StateError, Params: params, Message: ErrorMessage}
	}

	return View{
		State:        StateResults,
		Params:       params,
		TotalResults: resp.TotalResults,
		Recipes:      resp.Results,
	}
}
