package pages

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/killallgit/recipe-search/api/types"
	"github.com/killallgit/recipe-search/internal/web"
	"github.com/killallgit/recipe-search/pkg/htmltext"
)

// GetRecipe renders the detail page for one recipe. Every failure, including
// a malformed id, renders the not-found page.
func GetRecipe(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil || id <= 0 {
			notFound(c)
			return
		}

		recipe, err := deps.Recipes.GetRecipeByID(c.Request.Context(), id)
		if err != nil {
			deps.Logger().Warn("failed to load recipe", zap.Int64("recipe_id", id), zap.Error(err))
			notFound(c)
			return
		}

		c.HTML(http.StatusOK, web.DetailTemplate, web.DetailPage{
			Title:   recipe.Title,
			Recipe:  recipe,
			Summary: htmltext.Paragraphs(recipe.Summary),
			Steps:   htmltext.Steps(recipe.Instructions),
			BackURL: backURL(c),
		})
	}
}

func notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, web.NotFoundTemplate, web.NotFoundPage{Title: "Not found"})
}

// backURL returns the referring page when it is on this site
func backURL(c *gin.Context) string {
	ref, err := url.Parse(c.Request.Referer())
	if err != nil || ref.Host != c.Request.Host {
		return "/"
	}
	return types.LocalPath(ref.RequestURI())
}
