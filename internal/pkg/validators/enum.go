package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Enum returns a validation func accepting only the given string values.
func Enum(values ...string) validator.Func {
	allowed := make(map[string]struct{}, len(values))
	for _, v := range values {
		allowed[v] = struct{}{}
	}
	return func(fl validator.FieldLevel) bool {
		_, ok := allowed[fl.Field().String()]
		return ok
	}
}

// FoldedEnum is Enum with case-insensitive matching.
func FoldedEnum(values ...string) validator.Func {
	allowed := make(map[string]struct{}, len(values))
	for _, v := range values {
		allowed[strings.ToLower(v)] = struct{}{}
	}
	return func(fl validator.FieldLevel) bool {
		_, ok := allowed[strings.ToLower(fl.Field().String())]
		return ok
	}
}

// Struct validates s with the given custom tags registered and flattens
// validator.ValidationErrors into a single readable error.
func Struct(s interface{}, custom map[string]validator.Func) error {
	validate := validator.New()

	for tag, fn := range custom {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register custom validator %s: %w", tag, err)
		}
	}

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
