package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// GetValidator returns the process-wide validator instance, used for structs
// that are bound outside gin's own binding path (query-param structs).
func GetValidator() *validator.Validate {
	return validate
}
