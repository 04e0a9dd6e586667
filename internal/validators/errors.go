package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation matches any ValidationErrors value.
	ErrValidation = errors.New("validation failed")

	ErrRequired         = errors.New("field is required")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrWeakPassword     = errors.New("password does not meet the policy")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrTermsNotAccepted = errors.New("terms and conditions not accepted")
	ErrInvalidPrepTime  = errors.New("prep time must be between 1 and 300 minutes")
	ErrInvalidCategory  = errors.New("unknown recipe category")
)

// FieldError is a single failed field.
type FieldError struct {
	Field string
	// Err is one of the field sentinels above.
	Err error
	// Message is shown to the user next to the field.
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// ValidationErrors lists every failed field in form order.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Error())
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

func (v ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(v))
	for _, fe := range v {
		errs = append(errs, fe)
	}
	return errs
}

// For returns the error of field, if it failed.
func (v ValidationErrors) For(field string) (FieldError, bool) {
	for _, fe := range v {
		if fe.Field == field {
			return fe, true
		}
	}
	return FieldError{}, false
}

// orNil returns nil for an empty list so callers can `return errs.orNil()`.
func (v ValidationErrors) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
