// Package validators holds per-feature request validation middleware. Each
// validator parses the body into a typed request, runs the shared validator
// and stashes the result in Locals for the handler; a failure never reaches
// the repository layer.
package validators

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validate is the shared validator instance.
var Validate = validator.New()

// FieldErrors flattens validator.v10 errors into a field -> message map.
func FieldErrors(err error) map[string]string {
	errors := make(map[string]string)

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["body"] = "Invalid request body!"
		return errors
	}

	for _, fieldErr := range ve {
		switch fieldErr.Tag() {
		case "required":
			errors[fieldErr.Field()] = fmt.Sprintf("%s is required!", fieldErr.Field())
		case "min":
			errors[fieldErr.Field()] = fmt.Sprintf("%s must be at least %s!", fieldErr.Field(), fieldErr.Param())
		case "max":
			errors[fieldErr.Field()] = fmt.Sprintf("%s must be at most %s!", fieldErr.Field(), fieldErr.Param())
		case "oneof":
			errors[fieldErr.Field()] = fmt.Sprintf("%s must be one of: %s!", fieldErr.Field(), fieldErr.Param())
		case "gte":
			errors[fieldErr.Field()] = fmt.Sprintf("%s must be %s or greater!", fieldErr.Field(), fieldErr.Param())
		default:
			errors[fieldErr.Field()] = fmt.Sprintf("%s is invalid!", fieldErr.Field())
		}
	}

	return errors
}
