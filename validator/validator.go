// Package validator wraps go-playground/validator for the struct contracts
// of this module, mapping violations to JSON field names with readable
// messages.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// errorMessages maps validation tags to message templates.
var errorMessages = map[string]string{
	"required": "The field '%s' is required.",
	"oneof":    "The field '%s' must be one of %s.",
	"gte":      "The field '%s' must be greater than or equal to %s.",
	"lte":      "The field '%s' must be less than or equal to %s.",
}

// parseMessage constructs a friendly error message for a violation.
func parseMessage(jsonTag string, e validator.FieldError) string {
	if msg, exists := errorMessages[e.Tag()]; exists {
		if strings.Count(msg, "%s") == 2 {
			return fmt.Sprintf(msg, jsonTag, e.Param())
		}
		return fmt.Sprintf(msg, jsonTag)
	}
	return fmt.Sprintf("Field '%s' is invalid: %s", jsonTag, e.Tag())
}

// ValidateStruct validates a struct pointer and returns a map of JSON field
// names to messages. An empty map means the struct is valid.
func ValidateStruct(s any) map[string]string {
	validationErrors := make(map[string]string)

	err := validate.Struct(s)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			structType := reflect.TypeOf(s)
			for structType.Kind() == reflect.Pointer {
				structType = structType.Elem()
			}
			for _, e := range validationErrs {
				field, _ := structType.FieldByName(e.StructField())
				jsonTag := field.Tag.Get("json")
				if jsonTag == "" {
					jsonTag = e.StructField()
				} else {
					jsonTag = strings.Split(jsonTag, ",")[0]
				}
				validationErrors[jsonTag] = parseMessage(jsonTag, e)
			}
		}
	}

	return validationErrors
}
