package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrValidation wraps every field-level failure so callers can
	// distinguish "the record is bad" from infrastructure errors with a
	// single errors.Is check. The wrapped message is user-readable.
	ErrValidation = errors.New("validation failed")
)
