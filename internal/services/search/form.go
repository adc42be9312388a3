package search

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/killallgit/recipe-search/internal/models"
)

// Field names accepted by Form.Set
const (
	FieldQuery        = "query"
	FieldCuisine      = "cuisine"
	FieldDiet         = "diet"
	FieldIntolerances = "intolerances"
	FieldType         = "type"
	FieldNumber       = "number"
)

// Form holds the draft criteria edited before submission. Edits never touch
// the navigational parameters; only Submit hands the draft on. A form is built
// per request from the navigational parameters, so every navigation starts a
// fresh draft.
type Form struct {
	mu    sync.Mutex
	draft models.SearchParameters
}

// NewForm creates a form whose draft starts as initial
func NewForm(initial models.SearchParameters) *Form {
	return &Form{draft: initial}
}

// Set updates one draft field
func (f *Form) Set(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case FieldQuery:
		f.draft.Query = value
	case FieldCuisine:
		f.draft.Cuisine = value
	case FieldDiet:
		f.draft.Diet = value
	case FieldIntolerances:
		f.draft.Intolerances = value
	case FieldType:
		f.draft.Type = value
	case FieldNumber:
		if value == "" {
			f.draft.Number = 0
			return nil
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("number must be an integer: %w", err)
		}
		f.draft.Number = n
	default:
		return fmt.Errorf("unknown search field %q", field)
	}
	return nil
}

// Draft returns the current draft
func (f *Form) Draft() models.SearchParameters {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Submit returns the draft for navigation
func (f *Form) Submit() models.SearchParameters {
	return f.Draft()
}
