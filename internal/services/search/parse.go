// Package search turns navigational query parameters into search criteria
// and back, and holds the draft edited by the search form.
package search

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/killallgit/recipe-search/internal/models"
)

// ParseParameters reads search criteria from a query. Missing values stay
// empty; number falls back to the default when absent, non-numeric or below 1.
func ParseParameters(values url.Values) models.SearchParameters {
	p := models.SearchParameters{
		Query:        values.Get("query"),
		Cuisine:      values.Get("cuisine"),
		Diet:         values.Get("diet"),
		Intolerances: values.Get("intolerances"),
		Type:         values.Get("type"),
		Number:       models.DefaultResultCount,
	}

	if raw := strings.TrimSpace(values.Get("number")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			p.Number = n
		}
	}
	return p
}
