package validator

import "errors"

// ErrValidationFailed matches every ValidationErrors value via errors.Is.
var ErrValidationFailed = errors.New("validation failed")

// ErrEmptyDate is returned by ParseDate for blank input.
var ErrEmptyDate = errors.New("empty date")
