// Package validator provides small, composable validation rules for birth
// dates, UUIDs and bounded configuration values.
//
// Every exported rule constructor returns a Rule: a Check function paired with
// translation-friendly error metadata. Rules are evaluated either one at a
// time with Validate, which returns a structured Result, or in bulk with Apply,
// which aggregates failures into ValidationErrors.
//
//	err := validator.Apply(
//	    validator.MinAgeString("birthdate", input.Birthdate, 18),
//	    validator.ValidUUID("id", input.ID),
//	)
//	if errors.Is(err, validator.ErrValidationFailed) {
//	    for _, verr := range validator.ExtractValidationErrors(err) {
//	        // verr.TranslationKey, verr.TranslationValues
//	    }
//	}
//
// Age rules count full years, so a birthday later in the current year does
// not yet count. Birthdates in the future produce a negative age and fail any
// non-negative minimum. Textual dates are parsed with dateparse; input it
// cannot read fails with the "incorrect date format" message
// (validation.date_format).
//
// UUID rules accept only the canonical 36 character hyphenated form.
package validator
