package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the `validate` tags of a DTO
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// GetValidationErrors maps a validator error to field -> message
func GetValidationErrors(err error) map[string]string {
	result := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		if err != nil {
			result["_"] = err.Error()
		}
		return result
	}

	for _, fe := range verrs {
		field := lowerFirst(fe.Field())
		switch fe.Tag() {
		case "required":
			result[field] = field + " is required"
		case "min":
			result[field] = fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		case "max":
			result[field] = fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		case "datetime":
			result[field] = fmt.Sprintf("%s must match the format %s", field, fe.Param())
		case "len":
			result[field] = fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
		case "numeric":
			result[field] = field + " must be numeric"
		case "url":
			result[field] = field + " must be a valid URL"
		default:
			result[field] = fmt.Sprintf("%s failed on %s", field, fe.Tag())
		}
	}
	return result
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
