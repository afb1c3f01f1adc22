package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidTerm  = errors.New("invalid lease term")
	ErrInvalidRate  = errors.New("invalid interest rate")
)

// CalculationError is returned for any input the engine refuses to compute.
// It wraps one of ErrInvalidInput, ErrInvalidTerm or ErrInvalidRate.
type CalculationError struct {
	Field   string
	Message string
	Err     error
}

func (e *CalculationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: %s", e.Err, e.Message)
	}
	return fmt.Sprintf("%v: %s: %s", e.Err, e.Field, e.Message)
}

func (e *CalculationError) Unwrap() error {
	return e.Err
}

// Kind returns a stable code for the wrapped error.
func (e *CalculationError) Kind() string {
	switch {
	case errors.Is(e.Err, ErrInvalidTerm):
		return "invalid_term"
	case errors.Is(e.Err, ErrInvalidRate):
		return "invalid_rate"
	default:
		return "invalid_input"
	}
}

func NewInvalidInputError(field, message string) *CalculationError {
	return &CalculationError{Field: field, Message: message, Err: ErrInvalidInput}
}

func NewInvalidTermError(message string) *CalculationError {
	return &CalculationError{Field: "lease_term_years", Message: message, Err: ErrInvalidTerm}
}

func NewInvalidRateError(message string) *CalculationError {
	return &CalculationError{Field: "annual_interest_rate", Message: message, Err: ErrInvalidRate}
}
