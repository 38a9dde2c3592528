package types

import "errors"

// Value validation errors.
var (
	ErrInvalidValue = errors.New("invalid value")
	ErrMissingField = errors.New("required field is missing")
)

// ValidationError reports a raw value that failed a value-object constraint.
// Message is the human-readable constraint shown to the user verbatim.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap lets callers match any ValidationError with errors.Is(err, ErrInvalidValue).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidValue
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// zeroer is implemented by every value object; the zero value of a value
// object never passed validation.
type zeroer interface {
	IsZero() bool
}

type requiredField struct {
	name  string
	value zeroer
}

// requireAll returns ErrMissingField naming the first unset field.
func requireAll(fields ...requiredField) error {
	for _, f := range fields {
		if f.value.IsZero() {
			return &missingFieldError{field: f.name}
		}
	}
	return nil
}

type missingFieldError struct {
	field string
}

func (e *missingFieldError) Error() string {
	return e.field + " is required"
}

func (e *missingFieldError) Unwrap() error {
	return ErrMissingField
}
