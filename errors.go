package modeline

import "errors"

// Errors reported by typed-mode option resolution
var (
	// ErrBooleanValueConflict is returned when a boolean option token carries an explicit =value.
	ErrBooleanValueConflict = errors.New("boolean option does not take a value")
	// ErrMissingValue is returned when a non-boolean option token carries no =value.
	ErrMissingValue = errors.New("option requires a value")
)
