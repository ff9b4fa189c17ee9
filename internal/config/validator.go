package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	showcaseerrors "github.com/alexisbeaulieu97/showcase/pkg/errors"
)

// Validate checks cfg against the control domains and the accepted enums.
func Validate(cfg *Config) error {
	if cfg == nil {
		return showcaseerrors.NewValidationError("config", nil, "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		return showcaseerrors.NewValidationError(field, ve.Value(), describe(ve), err)
	}

	return showcaseerrors.NewValidationError("config", nil, err.Error(), err)
}

// yamlishFieldName drops the root struct name from the namespace, leaving
// e.g. "input.variant".
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	case "input_variant":
		return "must be one of outlined filled ghost"
	case "input_size":
		return "must be one of sm md lg"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
