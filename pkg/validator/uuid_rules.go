package validator

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// parseCanonicalUUID accepts only the 36 character hyphenated form. Length
// and hyphen positions are checked before parsing.
func parseCanonicalUUID(value string) (uuid.UUID, bool) {
	if len(value) != 36 || value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// ValidUUID validates the canonical UUID format. The message echoes the
// rejected value.
func ValidUUID(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, ok := parseCanonicalUUID(strings.TrimSpace(value))
			return ok
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("uuid %s is invalid", value),
			TranslationKey: "validation.uuid",
			TranslationValues: map[string]any{
				"field": field,
				"uuid":  value,
			},
		},
	}
}

func NonNilUUIDString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			id, ok := parseCanonicalUUID(strings.TrimSpace(value))
			return ok && id != uuid.Nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "UUID cannot be nil",
			TranslationKey: "validation.uuid_not_nil",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func ValidUUIDVersionString(field, value string, version int) Rule {
	return Rule{
		Check: func() bool {
			id, ok := parseCanonicalUUID(strings.TrimSpace(value))
			return ok && id.Version() == uuid.Version(version)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be a UUID version %d", version),
			TranslationKey: "validation.uuid_version",
			TranslationValues: map[string]any{
				"field":   field,
				"version": version,
			},
		},
	}
}
