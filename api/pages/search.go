package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/killallgit/recipe-search/api/types"
	"github.com/killallgit/recipe-search/internal/models"
	"github.com/killallgit/recipe-search/internal/services/results"
	"github.com/killallgit/recipe-search/internal/services/search"
	"github.com/killallgit/recipe-search/internal/web"
)

// GetSearch renders the search page for the criteria in the URL query.
// Each rendered result list gets its own grid.
func GetSearch(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := search.ParseParameters(c.Request.URL.Query())
		view := deps.Results.Render(c.Request.Context(), params)

		page := web.SearchPage{
			Title:   "Search",
			Draft:   search.NewForm(params).Draft(),
			Options: deps.FilterOptions,
			Results: &view,
		}

		if view.State == results.StateResults {
			store := deps.Preferences.ForSession(types.SessionID(c))
			g := deps.Grids.Activate(c.Request.Context(), view.Recipes, store)
			page.Grid = &web.GridFragment{
				View:     g.View(),
				ReturnTo: c.Request.URL.RequestURI(),
			}
		}

		c.HTML(http.StatusOK, web.SearchTemplate, page)
	}
}

// PostSearch accepts the search form and redirects to the page showing its criteria
func PostSearch(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		form := search.NewForm(models.SearchParameters{})

		for _, field := range []string{
			search.FieldQuery,
			search.FieldCuisine,
			search.FieldDiet,
			search.FieldIntolerances,
			search.FieldType,
			search.FieldNumber,
		} {
			value, ok := c.GetPostForm(field)
			if !ok {
				continue
			}
			if err := form.Set(field, value); err != nil {
				deps.Logger().Debug("ignoring search field", zap.String("field", field), zap.Error(err))
			}
		}

		location := deps.Orchestrator.Navigate("/", form.Submit())
		c.Redirect(http.StatusSeeOther, location)
	}
}
