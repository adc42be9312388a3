package models

import (
	"net/url"
	"strconv"
)

// DefaultResultCount is used when no valid result count is supplied
const DefaultResultCount = 12

// SearchParameters is the set of recipe search criteria.
// Empty strings mean "absent".
type SearchParameters struct {
	Query        string `json:"query" form:"query" example:"pasta"`
	Cuisine      string `json:"cuisine,omitempty" form:"cuisine" example:"Italian"`
	Diet         string `json:"diet,omitempty" form:"diet" example:"Vegetarian"`
	Intolerances string `json:"intolerances,omitempty" form:"intolerances" example:"Dairy"`
	Type         string `json:"type,omitempty" form:"type" example:"Main course"`
	Number       int    `json:"number,omitempty" form:"number" example:"12"`
}

// Values encodes the parameters as a flat query, omitting empty and zero fields
func (p SearchParameters) Values() url.Values {
	v := url.Values{}
	set := func(key, value string) {
		if value != "" {
			v.Set(key, value)
		}
	}
	set("query", p.Query)
	set("cuisine", p.Cuisine)
	set("diet", p.Diet)
	set("intolerances", p.Intolerances)
	set("type", p.Type)
	if p.Number > 0 {
		v.Set("number", strconv.Itoa(p.Number))
	}
	return v
}

// ResultCount returns Number, or DefaultResultCount when Number is not positive
func (p SearchParameters) ResultCount() int {
	if p.Number < 1 {
		return DefaultResultCount
	}
	return p.Number
}

// HasQuery reports whether a search should be performed at all
func (p SearchParameters) HasQuery() bool {
	return p.Query != ""
}
