package types

// SearchRequest is the query of the JSON recipe search endpoint
type SearchRequest struct {
	Query        string `form:"query" binding:"required,max=200" example:"pasta"`
	Cuisine      string `form:"cuisine" binding:"omitempty,filter_option=cuisine" example:"Italian"`
	Diet         string `form:"diet" binding:"omitempty,filter_option=diet" example:"Vegetarian"`
	Intolerances string `form:"intolerances" binding:"omitempty,filter_option=intolerances" example:"Dairy"`
	Type         string `form:"type" binding:"omitempty,filter_option=type" example:"Main course"`
	Number       int    `form:"number" binding:"omitempty,min=1,max=100" example:"12"`
}

// ImageFailureRequest reports a recipe whose image failed to load
type ImageFailureRequest struct {
	RecipeID int64 `json:"recipe_id" form:"recipe_id" binding:"required,gt=0" example:"715538"`
}

// ImageFailureFragmentRequest is the page script's image failure report.
// It arrives as a form post or as JSON.
type ImageFailureFragmentRequest struct {
	RecipeID int64  `json:"recipe_id" form:"recipe_id" binding:"required,gt=0"`
	ReturnTo string `json:"return_to" form:"return_to"`
}

// PreferenceRequest sets the hide-recipes-without-image preference
type PreferenceRequest struct {
	HideWithoutImage *bool `json:"hide_without_image" binding:"required" example:"true"`
}
