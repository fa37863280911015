package bom

import "errors"

var (
	ErrMissingProductFields = errors.New("missing product fields")
	ErrNoVendors            = errors.New("no vendors")
	ErrDuplicateSKU         = errors.New("duplicate sku")
	ErrEmptyVendorName      = errors.New("empty vendor name")
	ErrDuplicateVendorName  = errors.New("duplicate vendor name")
	ErrNotConfirmed         = errors.New("action not confirmed")
	ErrNotFound             = errors.New("record not found")
)

// ValidationError carries the message shown to the user next to the
// sentinel callers match on.
type ValidationError struct {
	Err     error
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(err error, message string) *ValidationError {
	return &ValidationError{Err: err, Message: message}
}
