package recipes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/killallgit/recipe-search/api/types"
	"github.com/killallgit/recipe-search/internal/models"
	apperrors "github.com/killallgit/recipe-search/pkg/errors"
)

// Search runs a recipe search and activates a grid over the results
// @Summary Search recipes
// @Description Searches recipes by keyword with optional filters. The response includes a grid that tracks image failures and the visitor's image preference.
// @Tags recipes
// @Produce json
// @Param query query string true "Search keyword"
// @Param cuisine query string false "Cuisine"
// @Param diet query string false "Diet"
// @Param intolerances query string false "Intolerance"
// @Param type query string false "Meal type"
// @Param number query int false "Number of results (default 12)"
// @Success 200 {object} types.RecipeSearchResponse
// @Failure 400 {object} types.ErrorResponse
// @Failure 502 {object} types.ErrorResponse
// @Router /api/v1/recipes/search [get]
func Search(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SearchRequest
		if err := c.ShouldBindQuery(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid search parameters",
				Error:   string(apperrors.ErrCodeValidation),
				Details: err.Error(),
			})
			return
		}

		params := models.SearchParameters{
			Query:        req.Query,
			Cuisine:      req.Cuisine,
			Diet:         req.Diet,
			Intolerances: req.Intolerances,
			Type:         req.Type,
			Number:       req.Number,
		}
		params.Number = params.ResultCount()

		resp, err := deps.Recipes.Search(c.Request.Context(), params)
		if err != nil {
			deps.Logger().Error("recipe search failed", zap.String("query", params.Query), zap.Error(err))
			types.SendError(c, err)
			return
		}

		store := deps.Preferences.ForSession(types.SessionID(c))
		g := deps.Grids.Activate(c.Request.Context(), resp.Results, store)
		gridData := types.NewGridData(g)

		types.SendSuccess(c, types.RecipeSearchResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Search completed"},
			TotalResults: resp.TotalResults,
			Offset:       resp.Offset,
			Number:       resp.Number,
			Results:      resp.Results,
			Grid:         &gridData,
		})
	}
}

// GetByID returns the full information record for one recipe
// @Summary Get recipe
// @Description Returns the detail record of one recipe
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} types.RecipeResponse
// @Failure 400 {object} types.ErrorResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/recipes/{id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseInt64Param(c, "id")
		if !ok {
			return
		}

		recipe, err := deps.Recipes.GetRecipeByID(c.Request.Context(), id)
		if err != nil {
			deps.Logger().Warn("failed to load recipe", zap.Int64("recipe_id", id), zap.Error(err))
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.RecipeResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Recipe retrieved"},
			Recipe:       recipe,
		})
	}
}

// GetFilters lists the accepted filter values
// @Summary List filter options
// @Description Returns the cuisines, diets, intolerances and meal types accepted by the search endpoint
// @Tags recipes
// @Produce json
// @Success 200 {object} types.FiltersResponse
// @Router /api/v1/filters [get]
func GetFilters(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		types.SendSuccess(c, types.FiltersResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Filter options"},
			Filters:      deps.FilterOptions,
		})
	}
}
