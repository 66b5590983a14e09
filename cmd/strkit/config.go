package main

import (
	"strings"

	"github.com/swindon/laravel-helpers/pkg/sanitizer"
	"github.com/swindon/laravel-helpers/pkg/strutil"
	"github.com/swindon/laravel-helpers/pkg/validator"
)

const maxGeneratedLength = 4096

var logLevels = []string{"debug", "info", "warn", "warning", "error"}

// Config holds defaults for the CLI, read from STRKIT_* variables.
type Config struct {
	Env            string           `env:"STRKIT_ENV" envDefault:"development"`
	LogLevel       string           `env:"STRKIT_LOG_LEVEL" envDefault:"warn"`
	RandomLength   int              `env:"STRKIT_RANDOM_LENGTH" envDefault:"16"`
	PasswordLength int              `env:"STRKIT_PASSWORD_LENGTH" envDefault:"8"`
	UUIDNamespace  string           `env:"STRKIT_UUID_NAMESPACE"`
	SanitizePolicy sanitizer.Policy `env:"STRKIT_SANITIZE_POLICY" envDefault:"regex"`
}

// Validate implements config.Validator.
func (c *Config) Validate() error {
	return validator.Apply(
		validator.OneOf("STRKIT_LOG_LEVEL", strings.ToLower(c.LogLevel), logLevels),
		validator.IntBetween("STRKIT_RANDOM_LENGTH", c.RandomLength, 1, maxGeneratedLength),
		validator.IntBetween("STRKIT_PASSWORD_LENGTH", c.PasswordLength, 1, maxGeneratedLength),
		validator.OneOf("STRKIT_SANITIZE_POLICY", c.SanitizePolicy, sanitizer.Policies),
		namespaceRule("STRKIT_UUID_NAMESPACE", c.UUIDNamespace),
	)
}

func namespaceRule(field, value string) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			_, err := strutil.Namespace(value)
			return err == nil
		},
		Error: validator.ValidationError{
			Field:          field,
			Message:        "must be dns, url, oid, x500 or a UUID",
			TranslationKey: "validation.uuid_namespace",
			TranslationValues: map[string]any{
				"field": field,
				"value": value,
			},
		},
	}
}
