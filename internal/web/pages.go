package web

import (
	"github.com/killallgit/recipe-search/internal/models"
	"github.com/killallgit/recipe-search/internal/services/grid"
	"github.com/killallgit/recipe-search/internal/services/results"
)

// Template names
const (
	SearchTemplate   = "search"
	GridTemplate     = "grid"
	DetailTemplate   = "detail"
	NotFoundTemplate = "notfound"
)

// SearchPage is the data for the search page
type SearchPage struct {
	Title   string
	Draft   models.SearchParameters
	Options models.FilterOptions
	Results *results.View
	Grid    *GridFragment
}

// GridFragment is the data for the grid section. ReturnTo is the page the
// non-script preference form redirects back to.
type GridFragment struct {
	View     grid.View
	ReturnTo string
}

// DetailPage is the data for the recipe detail page
type DetailPage struct {
	Title   string
	Recipe  *models.RecipeDetail
	Summary []string
	Steps   []string
	BackURL string
}

// NotFoundPage is the data for the not-found page
type NotFoundPage struct {
	Title string
}
