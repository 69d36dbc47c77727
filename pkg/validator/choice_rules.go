package validator

import (
	"fmt"
	"strings"
)

func InList[T comparable](field string, value T, allowedValues []T) Rule {
	return Rule{
		Check: func() bool {
			for _, allowed := range allowedValues {
				if value == allowed {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %v", allowedValues),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": allowedValues,
			},
		},
	}
}

// InListString is InList with a readable message for string choices.
func InListString(field, value string, allowedValues []string) Rule {
	rule := InList(field, value, allowedValues)
	rule.Error.Message = fmt.Sprintf("must be one of: %s", strings.Join(allowedValues, ", "))
	return rule
}
