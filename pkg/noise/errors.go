package noise

import (
	"errors"
	"fmt"
)

// InvalidParameterError reports a physical parameter outside its domain.
type InvalidParameterError struct {
	// Field names the offending parameter (request field naming).
	Field string

	// Value is the rejected value.
	Value float64

	// Constraint describes the violated domain constraint.
	Constraint string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s (got %g)", e.Field, e.Constraint, e.Value)
}

// IsInvalidParameter returns true if the error is an InvalidParameterError.
// Uses errors.As to handle wrapped errors.
func IsInvalidParameter(err error) bool {
	var ie *InvalidParameterError
	return errors.As(err, &ie)
}

// UndefinedSNRError reports a budget whose total noise power is exactly
// zero, leaving the SNR mathematically undefined.
type UndefinedSNRError struct{}

func (e *UndefinedSNRError) Error() string {
	return "total noise power is zero: SNR is undefined"
}

// IsUndefinedSNR returns true if the error is an UndefinedSNRError.
func IsUndefinedSNR(err error) bool {
	var ue *UndefinedSNRError
	return errors.As(err, &ue)
}

func invalidParameter(field string, value float64, constraint string) error {
	return &InvalidParameterError{Field: field, Value: value, Constraint: constraint}
}
