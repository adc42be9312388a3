package spoonacular

import "github.com/killallgit/recipe-search/internal/models"

// FilterOptions returns the values offered by the search form's select inputs
func FilterOptions() models.FilterOptions {
	return models.FilterOptions{
		Cuisines: []string{
			"African", "American", "British", "Cajun", "Caribbean", "Chinese",
			"Eastern European", "European", "French", "German", "Greek", "Indian",
			"Irish", "Italian", "Japanese", "Jewish", "Korean", "Latin American",
			"Mediterranean", "Mexican", "Middle Eastern", "Nordic", "Southern",
			"Spanish", "Thai", "Vietnamese",
		},
		Diets: []string{
			"Gluten Free", "Ketogenic", "Vegetarian", "Lacto-Vegetarian",
			"Ovo-Vegetarian", "Vegan", "Pescetarian", "Paleo", "Primal",
			"Low FODMAP", "Whole30",
		},
		Intolerances: []string{
			"Dairy", "Egg", "Gluten", "Grain", "Peanut", "Seafood", "Sesame",
			"Shellfish", "Soy", "Sulfite", "Tree Nut", "Wheat",
		},
		MealTypes: []string{
			"Main course", "Side dish", "Dessert", "Appetizer", "Salad", "Bread",
			"Breakfast", "Soup", "Beverage", "Sauce", "Marinade", "Fingerfood",
			"Snack", "Drink",
		},
	}
}
