package grids

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/recipe-search/api/types"
	"github.com/killallgit/recipe-search/internal/services/grid"
)

// Get returns a grid snapshot
// @Summary Get grid
// @Description Returns the visible recipes and render state of an active grid
// @Tags grids
// @Produce json
// @Param id path string true "Grid ID"
// @Success 200 {object} types.GridResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/grids/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		g, ok := lookup(c, deps)
		if !ok {
			return
		}
		sendGrid(c, g)
	}
}

// PostImageFailure records a failed image load
// @Summary Report image failure
// @Description Marks a recipe's image as failed for the rest of the grid's life. Repeated reports are ignored.
// @Tags grids
// @Accept json
// @Produce json
// @Param id path string true "Grid ID"
// @Param request body types.ImageFailureRequest true "Failed recipe"
// @Success 200 {object} types.GridResponse
// @Failure 400 {object} types.ErrorResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/grids/{id}/image-failures [post]
func PostImageFailure(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		g, ok := lookup(c, deps)
		if !ok {
			return
		}

		var req types.ImageFailureRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		card, ok := g.Card(req.RecipeID)
		if !ok {
			types.SendNotFound(c, "Recipe is not part of this grid")
			return
		}
		card.ImageError()

		sendGrid(c, g)
	}
}

// PutPreference sets the hide-recipes-without-image preference
// @Summary Set image preference
// @Description Sets and persists whether recipes without a usable image are hidden
// @Tags grids
// @Accept json
// @Produce json
// @Param id path string true "Grid ID"
// @Param request body types.PreferenceRequest true "Preference"
// @Success 200 {object} types.GridResponse
// @Failure 400 {object} types.ErrorResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/grids/{id}/preference [put]
func PutPreference(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		g, ok := lookup(c, deps)
		if !ok {
			return
		}

		var req types.PreferenceRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		g.TogglePreference(c.Request.Context(), *req.HideWithoutImage)
		sendGrid(c, g)
	}
}

// PostShowAll turns the image preference off
// @Summary Show all recipes
// @Description Turns off hiding of recipes without images
// @Tags grids
// @Produce json
// @Param id path string true "Grid ID"
// @Success 200 {object} types.GridResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/grids/{id}/show-all [post]
func PostShowAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		g, ok := lookup(c, deps)
		if !ok {
			return
		}
		g.ShowAll(c.Request.Context())
		sendGrid(c, g)
	}
}

func lookup(c *gin.Context, deps *types.Dependencies) (*grid.Grid, bool) {
	g, err := deps.Grids.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, grid.ErrGridNotFound) {
			types.SendNotFound(c, "Grid not found")
		} else {
			types.SendInternalError(c, "Grid lookup failed")
		}
		return nil, false
	}
	return g, true
}

func sendGrid(c *gin.Context, g *grid.Grid) {
	c.JSON(http.StatusOK, types.GridResponse{
		BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Grid state"},
		Grid:         types.NewGridData(g),
	})
}
