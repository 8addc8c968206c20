package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// RegisterCustomValidators attaches the custom binding validators used by the
// request DTOs. Call once at startup before registering routes.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("period", validatePeriod)
	}
}

// validatePeriod accepts a yyyy-mm billing period.
func validatePeriod(fl validator.FieldLevel) bool {
	return periodPattern.MatchString(fl.Field().String())
}
