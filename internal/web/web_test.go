package web

import (
	"bytes"
	"context"
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/recipe-search/internal/models"
	"github.com/killallgit/recipe-search/internal/services/grid"
	"github.com/killallgit/recipe-search/internal/services/results"
)

func render(t *testing.T, tmpl *template.Template, name string, data any) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, name, data))
	return buf.String()
}

func TestTemplates_Parse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{SearchTemplate, GridTemplate, DetailTemplate, NotFoundTemplate, "card", "header", "footer"} {
		assert.NotNil(t, tmpl.Lookup(name), "template %s", name)
	}
}

func TestSearchTemplate_States(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	opts := models.FilterOptions{Cuisines: []string{"Italian", "Thai"}}

	t.Run("prompt", func(t *testing.T) {
		out := render(t, tmpl, SearchTemplate, SearchPage{
			Options: opts,
			Results: &results.View{State: results.StatePrompt},
		})
		assert.Contains(t, out, "Start by searching for a recipe")
		assert.NotContains(t, out, "data-grid-id")
	})

	t.Run("error", func(t *testing.T) {
		out := render(t, tmpl, SearchTemplate, SearchPage{
			Options: opts,
			Results: &results.View{State: results.StateError, Message: results.ErrorMessage},
		})
		assert.Contains(t, out, "An error occurred")
		assert.Contains(t, out, "Something went wrong. Please try again later.")
	})

	t.Run("results with selected cuisine", func(t *testing.T) {
		g := grid.Activate(context.Background(), "g1", []models.RecipeSummary{
			{ID: 1, Title: "Pasta", Image: "https://img.example.com/1.jpg"},
		}, nil, nil)

		out := render(t, tmpl, SearchTemplate, SearchPage{
			Draft:   models.SearchParameters{Query: "pasta", Cuisine: "Thai"},
			Options: opts,
			Results: &results.View{State: results.StateResults, TotalResults: 42},
			Grid:    &GridFragment{View: g.View(), ReturnTo: "/?query=pasta"},
		})
		assert.Contains(t, out, "Results: 42")
		assert.Contains(t, out, `<option value="Thai" selected>`)
		assert.Contains(t, out, `value="pasta"`)
		assert.Contains(t, out, `data-grid-id="g1"`)
	})
}

func TestGridTemplate_States(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	t.Run("cards with hidden count", func(t *testing.T) {
		g := grid.Activate(context.Background(), "g1", []models.RecipeSummary{
			{ID: 1, Title: "Pasta", Image: "https://img.example.com/1.jpg", Vegan: true},
			{ID: 2, Title: "Soup"},
		}, nil, nil)

		out := render(t, tmpl, GridTemplate, GridFragment{View: g.View(), ReturnTo: "/"})
		assert.Contains(t, out, "Pasta")
		assert.NotContains(t, out, "Soup")
		assert.Contains(t, out, "1 recipe hidden without a usable image")
		assert.Contains(t, out, "Vegan")
		assert.Contains(t, out, `href="/recipe/1"`)
		assert.Contains(t, out, "recipeImageFailed(this)")
		assert.Contains(t, out, " checked")
	})

	t.Run("placeholder when preference off", func(t *testing.T) {
		g := grid.Activate(context.Background(), "g1", []models.RecipeSummary{{ID: 2, Title: "Soup"}}, nil, nil)
		g.TogglePreference(context.Background(), false)

		out := render(t, tmpl, GridTemplate, GridFragment{View: g.View(), ReturnTo: "/"})
		assert.Contains(t, out, "Soup")
		assert.Contains(t, out, "No image")
		assert.NotContains(t, out, "hidden without a usable image")
		assert.NotContains(t, out, " checked")
	})

	t.Run("no results", func(t *testing.T) {
		g := grid.Activate(context.Background(), "g1", nil, nil, nil)
		out := render(t, tmpl, GridTemplate, GridFragment{View: g.View()})
		assert.Contains(t, out, "No recipes found")
	})

	t.Run("all hidden", func(t *testing.T) {
		g := grid.Activate(context.Background(), "g1", []models.RecipeSummary{{ID: 2, Title: "Soup"}}, nil, nil)
		out := render(t, tmpl, GridTemplate, GridFragment{View: g.View()})
		assert.Contains(t, out, "Every recipe in these results is hidden")
		assert.Contains(t, out, "Show all recipes")
	})
}

func TestDetailTemplate(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	ready := 30
	out := render(t, tmpl, DetailTemplate, DetailPage{
		Title: "Pasta",
		Recipe: &models.RecipeDetail{
			RecipeSummary:   models.RecipeSummary{ID: 1, Title: "Pasta", ReadyInMinutes: &ready, Vegetarian: true},
			Servings:        4,
			PricePerServing: 250,
			CreditsText:     "Chef",
			SourceURL:       "https://example.com/pasta",
		},
		Summary: []string{"A quick pasta."},
		Steps:   []string{"Boil water.", "Cook pasta."},
		BackURL: "/?query=pasta",
	})

	assert.Contains(t, out, "30 min")
	assert.Contains(t, out, "$2.50")
	assert.Contains(t, out, "<li>Cook pasta.</li>")
	assert.Contains(t, out, "A quick pasta.")
	assert.Contains(t, out, "Source: Chef")
	assert.Contains(t, out, "No image")
}

func TestNotFoundTemplate(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	out := render(t, tmpl, NotFoundTemplate, NotFoundPage{Title: "Not found"})
	assert.Contains(t, out, "Recipe not found")
}
