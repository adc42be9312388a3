package types

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/killallgit/recipe-search/internal/models"
)

// RegisterValidators installs the filter_option rule on gin's validator.
// The rule's parameter names the option list: cuisine, diet, intolerances or type.
func RegisterValidators(options models.FilterOptions) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}

	return v.RegisterValidation("filter_option", func(fl validator.FieldLevel) bool {
		return options.Contains(fl.Param(), fl.Field().String())
	})
}
