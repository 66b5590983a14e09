package validator

import (
	"fmt"
	"slices"
	"strings"
)

// IntBetween checks min <= value <= max.
func IntBetween(field string, value, minValue, maxValue int) Rule {
	return Rule{
		Check: func() bool {
			return value >= minValue && value <= maxValue
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between %d and %d", minValue, maxValue),
			TranslationKey: "validation.between",
			TranslationValues: map[string]any{
				"field": field,
				"min":   minValue,
				"max":   maxValue,
			},
		},
	}
}

// OneOf checks that value is one of allowed. Comparison is exact.
func OneOf[T ~string](field string, value T, allowed []T) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowed, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be one of: " + joinValues(allowed),
			TranslationKey: "validation.one_of",
			TranslationValues: map[string]any{
				"field":   field,
				"allowed": allowed,
			},
		},
	}
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
