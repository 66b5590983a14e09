package validator

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ageAt returns the number of full years between birthdate and now. A
// birthdate in the future yields a negative age.
func ageAt(birthdate, now time.Time) int {
	age := now.Year() - birthdate.Year()

	// Adjust if birthday hasn't occurred this year
	if now.Month() < birthdate.Month() ||
		(now.Month() == birthdate.Month() && now.Day() < birthdate.Day()) {
		age--
	}

	return age
}

// MinAge validates minimum age by calculating years elapsed, accounting for leap years and exact dates.
func MinAge(field string, birthdate time.Time, minAge int) Rule {
	return Rule{
		Check: func() bool {
			return ageAt(birthdate, time.Now()) >= minAge
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("minimum age of %d years required", minAge),
			TranslationKey: "validation.min_age",
			TranslationValues: map[string]any{
				"field":   field,
				"min_age": minAge,
			},
		},
	}
}

func MaxAge(field string, birthdate time.Time, maxAge int) Rule {
	return Rule{
		Check: func() bool {
			return ageAt(birthdate, time.Now()) <= maxAge
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("maximum age of %d years exceeded", maxAge),
			TranslationKey: "validation.max_age",
			TranslationValues: map[string]any{
				"field":   field,
				"max_age": maxAge,
			},
		},
	}
}

func AgeBetween(field string, birthdate time.Time, minAge int, maxAge int) Rule {
	return Rule{
		Check: func() bool {
			age := ageAt(birthdate, time.Now())
			return age >= minAge && age <= maxAge
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("age must be between %d and %d years", minAge, maxAge),
			TranslationKey: "validation.age_between",
			TranslationValues: map[string]any{
				"field":   field,
				"min_age": minAge,
				"max_age": maxAge,
			},
		},
	}
}

// MinAgeString is MinAge for a textual date. Any layout dateparse recognises
// is accepted; anything else fails with the date format error.
func MinAgeString(field, value string, minAge int) Rule {
	birthdate, err := parseDate(value)
	if err != nil {
		return dateFormatRule(field, value)
	}
	return MinAge(field, birthdate, minAge)
}

// MaxAgeString is MaxAge for a textual date.
func MaxAgeString(field, value string, maxAge int) Rule {
	birthdate, err := parseDate(value)
	if err != nil {
		return dateFormatRule(field, value)
	}
	return MaxAge(field, birthdate, maxAge)
}

// ParseDate parses value in any layout dateparse recognises, ISO-8601
// included. Surrounding whitespace is ignored.
func ParseDate(value string) (time.Time, error) {
	return parseDate(value)
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrEmptyDate
	}
	return dateparse.ParseAny(value)
}

func dateFormatRule(field, value string) Rule {
	return Rule{
		Check: func() bool { return false },
		Error: ValidationError{
			Field:          field,
			Message:        "incorrect date format",
			TranslationKey: "validation.date_format",
			TranslationValues: map[string]any{
				"field": field,
				"value": value,
			},
		},
	}
}
