package grids

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/recipe-search/api/pages"
	"github.com/killallgit/recipe-search/api/types"
	"github.com/killallgit/recipe-search/internal/services/grid"
	"github.com/killallgit/recipe-search/internal/web"
)

// PostImageFailureFragment records a failed image for one card and returns
// the re-rendered grid
func PostImageFailureFragment(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		g, ok := lookupFragment(c, deps)
		if !ok {
			return
		}

		var req types.ImageFailureFragmentRequest
		if err := c.ShouldBind(&req); err != nil {
			c.String(http.StatusBadRequest, "invalid recipe_id")
			return
		}

		card, ok := g.Card(req.RecipeID)
		if !ok {
			c.String(http.StatusNotFound, "recipe not in grid")
			return
		}
		card.ImageError()

		renderFragment(c, g, req.ReturnTo)
	}
}

// PostPreferenceFragment toggles the image preference and returns the
// re-rendered grid
func PostPreferenceFragment(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		g, ok := lookupFragment(c, deps)
		if !ok {
			return
		}

		g.TogglePreference(c.Request.Context(), pages.FormBool(c, "hide_without_image"))
		renderFragment(c, g, c.PostForm("return_to"))
	}
}

func lookupFragment(c *gin.Context, deps *types.Dependencies) (*grid.Grid, bool) {
	g, err := deps.Grids.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, grid.ErrGridNotFound) {
			c.String(http.StatusNotFound, "grid not found")
		} else {
			c.String(http.StatusInternalServerError, "grid lookup failed")
		}
		return nil, false
	}
	return g, true
}

func renderFragment(c *gin.Context, g *grid.Grid, returnTo string) {
	c.HTML(http.StatusOK, web.GridTemplate, web.GridFragment{
		View:     g.View(),
		ReturnTo: types.LocalPath(returnTo),
	})
}
