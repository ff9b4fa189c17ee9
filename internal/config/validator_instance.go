package config

import (
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/showcase/internal/playground"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their YAML key.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return strings.ToLower(fld.Name)
			}
			return name
		})

		_ = v.RegisterValidation("input_variant", func(fl validator.FieldLevel) bool {
			return slices.Contains(playground.VariantDomain, fl.Field().String())
		})

		_ = v.RegisterValidation("input_size", func(fl validator.FieldLevel) bool {
			return slices.Contains(playground.SizeDomain, fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}
