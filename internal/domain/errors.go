package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// trip or review does not exist in the session's collections.
// Trip actions treat it as a silent no-op.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when form input fails
// validation (e.g. missing destination, non-positive budget, no rating).
// The controller surfaces it to the user as a blocking alert.
var ErrValidation = errors.New("validation error")

// ErrMissingElement is returned by a view binding when the element an
// operation needs is not present on the rendering surface.
// The controller logs it and aborts the operation without alerting the user.
var ErrMissingElement = errors.New("missing element")

// ErrNotImplemented marks demo actions that exist on the page but have no
// behaviour behind them yet (e.g. editing a trip).
var ErrNotImplemented = errors.New("not implemented")

// FieldError is one failed form field: Field is the form field name
// (e.g. "budget"), Message is the text shown next to it.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries the per-field failures of a form submission.
// It matches ErrValidation under errors.Is, so callers that only care about
// the category need not know the concrete type.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msg := ErrValidation.Error() + ": "
	for i, f := range e.Fields {
		if i > 0 {
			msg += "; "
		}
		msg += f.Message
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Has reports whether field failed validation.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}
