package middleware

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var fiscalYearLabelRegex = regexp.MustCompile(`^\d{4}-\d{4}$`)

// SetupValidator configures the validator with custom tags
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// Use JSON tag names for field names in errors
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			return name
		})

		// fiscal_year checks the "<year>-<year>" label shape. Consecutiveness
		// of the two years is a domain concern, validated past binding.
		_ = v.RegisterValidation("fiscal_year", func(fl validator.FieldLevel) bool {
			return fiscalYearLabelRegex.MatchString(fl.Field().String())
		})
	}
}

// getValidationMessage returns a human-readable validation message
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "min":
		if e.Type().Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Type().Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "len":
		return "Must be exactly " + e.Param() + " characters"
	case "uuid":
		return "Invalid UUID format"
	case "oneof":
		return "Must be one of: " + e.Param()
	case "fiscal_year":
		return "Must be a fiscal year label like 2024-2025"
	default:
		return "Invalid value"
	}
}

// ValidationMessages turns validator errors into field-to-message pairs.
// Non-validator errors yield an empty map.
func ValidationMessages(err error) map[string]string {
	out := map[string]string{}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			out[e.Field()] = getValidationMessage(e)
		}
	}
	return out
}
