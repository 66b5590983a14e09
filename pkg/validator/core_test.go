package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swindon/laravel-helpers/pkg/validator"
)

func passing() validator.Rule {
	return validator.Rule{Check: func() bool { return true }}
}

func failing(field, message string) validator.Rule {
	return validator.Rule{
		Check: func() bool { return false },
		Error: validator.ValidationError{Field: field, Message: message, TranslationKey: "validation.test"},
	}
}

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "birthdate", Message: "incorrect date format"})
		assert.Equal(t, "validation failed: birthdate: incorrect date format", errs.Error())
	})

	t.Run("joins multiple errors in order", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "id", Message: "uuid x is invalid"})
		errs.Add(validator.ValidationError{Field: "length", Message: "must be between 1 and 4096"})
		assert.Equal(t, "validation failed: id: uuid x is invalid; length: must be between 1 and 4096", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "password", Message: "too short"})
	errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
	errs.Add(validator.ValidationError{Field: "password", Message: "missing digit"})

	assert.False(t, errs.IsEmpty())
	assert.Equal(t, []string{"too short", "missing digit"}, errs.Get("password"))
	assert.Nil(t, errs.Get("name"))
	assert.Equal(t, []string{"password", "email"}, errs.Fields())
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "age: too young", validator.ValidationError{Field: "age", Message: "too young"}.Error())
	assert.Equal(t, "too young", validator.ValidationError{Message: "too young"}.Error())
}

func TestApply(t *testing.T) {
	t.Run("no rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("all rules pass", func(t *testing.T) {
		assert.NoError(t, validator.Apply(passing(), passing()))
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(failing("a", "first"), passing(), failing("b", "second"))
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, "a", errs[0].Field)
		assert.Equal(t, "b", errs[1].Field)
	})

	t.Run("matches ErrValidationFailed", func(t *testing.T) {
		err := validator.Apply(failing("a", "first"))
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		wrapped := fmt.Errorf("load config: %w", err)
		assert.ErrorIs(t, wrapped, validator.ErrValidationFailed)
		assert.True(t, validator.IsValidationError(wrapped))
		assert.Len(t, validator.ExtractValidationErrors(wrapped), 1)
	})
}

func TestValidate(t *testing.T) {
	t.Run("valid result has no error", func(t *testing.T) {
		result := validator.Validate(passing())
		assert.True(t, result.Valid)
		assert.Nil(t, result.Error)
	})

	t.Run("invalid result carries the rule error", func(t *testing.T) {
		result := validator.Validate(failing("age", "too young"))
		assert.False(t, result.Valid)
		require.NotNil(t, result.Error)
		assert.Equal(t, "age", result.Error.Field)
		assert.Equal(t, "too young", result.Error.Message)
		assert.Equal(t, "validation.test", result.Error.TranslationKey)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("plain")))
	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(errors.New("plain")))
	assert.NotErrorIs(t, errors.New("plain"), validator.ErrValidationFailed)
}
