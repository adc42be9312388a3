package models

import (
	"fmt"
	"strings"
)

// RecipeSummary is one recipe as returned by the recipe search endpoint
type RecipeSummary struct {
	ID             int64    `json:"id" example:"716429"`
	Title          string   `json:"title" example:"Pasta with Garlic, Scallions, Cauliflower & Breadcrumbs"`
	Image          string   `json:"image,omitempty" example:"https://img.spoonacular.com/recipes/716429-312x231.jpg"`
	ReadyInMinutes *int     `json:"readyInMinutes,omitempty" example:"45"`
	DishTypes      []string `json:"dishTypes,omitempty"`
	Cuisines       []string `json:"cuisines,omitempty"`
	Vegetarian     bool     `json:"vegetarian"`
	Vegan          bool     `json:"vegan"`
	GlutenFree     bool     `json:"glutenFree"`
}

// HasImage reports whether the recipe carries a non-blank image reference
func (r RecipeSummary) HasImage() bool {
	return strings.TrimSpace(r.Image) != ""
}

// ReadyTimeLabel renders the preparation time for display
func (r RecipeSummary) ReadyTimeLabel() string {
	if r.ReadyInMinutes == nil {
		return "time unknown"
	}
	return fmt.Sprintf("%d min", *r.ReadyInMinutes)
}

// PrimaryDishType returns the first dish type, or "" when none is known
func (r RecipeSummary) PrimaryDishType() string {
	if len(r.DishTypes) == 0 {
		return ""
	}
	return r.DishTypes[0]
}

// DietaryBadges lists the dietary flags set on the recipe, in display order
func (r RecipeSummary) DietaryBadges() []string {
	var badges []string
	if r.Vegetarian {
		badges = append(badges, "Vegetarian")
	}
	if r.Vegan {
		badges = append(badges, "Vegan")
	}
	if r.GlutenFree {
		badges = append(badges, "Gluten free")
	}
	return badges
}

// RecipeDetail is the full recipe information record
type RecipeDetail struct {
	RecipeSummary
	Servings        int      `json:"servings,omitempty"`
	HealthScore     float64  `json:"healthScore,omitempty"`
	PricePerServing float64  `json:"pricePerServing,omitempty"` // cents
	Summary         string   `json:"summary,omitempty"`         // HTML
	Instructions    string   `json:"instructions,omitempty"`    // HTML
	CreditsText     string   `json:"creditsText,omitempty"`
	SourceName      string   `json:"sourceName,omitempty"`
	SourceURL       string   `json:"sourceUrl,omitempty"`
	Diets           []string `json:"diets,omitempty"`
}

// PriceLabel formats the per-serving price as dollars
func (d RecipeDetail) PriceLabel() string {
	return fmt.Sprintf("$%.2f", d.PricePerServing/100)
}

// SearchResponse is the recipe search result page
type SearchResponse struct {
	Results      []RecipeSummary `json:"results"`
	Offset       int             `json:"offset"`
	Number       int             `json:"number"`
	TotalResults int             `json:"totalResults"`
}

// FilterOptions are the values offered by the search form's select inputs
type FilterOptions struct {
	Cuisines     []string `json:"cuisines"`
	Diets        []string `json:"diets"`
	Intolerances []string `json:"intolerances"`
	MealTypes    []string `json:"mealTypes"`
}

// Contains reports whether value is one of the options for the given search field.
// Empty values are always accepted.
func (o FilterOptions) Contains(field, value string) bool {
	if value == "" {
		return true
	}
	var list []string
	switch field {
	case "cuisine":
		list = o.Cuisines
	case "diet":
		list = o.Diets
	case "intolerances":
		list = o.Intolerances
	case "type":
		list = o.MealTypes
	default:
		return false
	}
	for _, v := range list {
		if strings.EqualFold(v, value) {
			return true
		}
	}
	return false
}
