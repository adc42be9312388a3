package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/killallgit/recipe-search/api/types"
	"github.com/killallgit/recipe-search/internal/models"
	"github.com/killallgit/recipe-search/internal/services/preferences"
)

// PostPreferences stores the image preference from the grid form and
// redirects back. It is the path taken when scripts are unavailable.
func PostPreferences(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		hide := FormBool(c, "hide_without_image")
		store := deps.Preferences.ForSession(types.SessionID(c))

		if err := preferences.WriteBool(c.Request.Context(), store, models.HideRecipesWithoutImageKey, hide); err != nil {
			deps.Logger().Error("failed to persist image preference", zap.Bool("value", hide), zap.Error(err))
		}

		c.Redirect(http.StatusSeeOther, types.LocalPath(c.PostForm("return_to")))
	}
}

// FormBool reads a checkbox posted after a hidden "false" input of the same
// name. The last value wins.
func FormBool(c *gin.Context, name string) bool {
	values := c.PostFormArray(name)
	if len(values) == 0 {
		return false
	}
	return values[len(values)-1] == "true"
}
