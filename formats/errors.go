package formats

import (
	"errors"
	"fmt"
)

// ValidationErrorType represents different types of validation errors
type ValidationErrorType string

const (
	// ErrorTypeAlphabet reports a residue outside the format's alphabet.
	ErrorTypeAlphabet ValidationErrorType = "alphabet"
	// ErrorTypeAlignment reports sequences of unequal length in an alignment.
	ErrorTypeAlignment ValidationErrorType = "alignment"
	// ErrorTypeHeader reports a missing or wrong header row.
	ErrorTypeHeader ValidationErrorType = "header"
	// ErrorTypeArity reports a data row whose cell count differs from the header.
	ErrorTypeArity ValidationErrorType = "arity"
	// ErrorTypeEmpty reports a table with no data rows or columns.
	ErrorTypeEmpty ValidationErrorType = "empty"
	// ErrorTypeColumns reports a table with fewer columns than the format requires.
	ErrorTypeColumns ValidationErrorType = "columns"
	// ErrorTypeNumeric reports a non-numeric value in a numeric column.
	ErrorTypeNumeric ValidationErrorType = "numeric"
	// ErrorTypeRecord reports a malformed record or delegated parse failure.
	ErrorTypeRecord ValidationErrorType = "record"
)

// ValidationError represents a custom error for format validation.
// It implements the error interface and includes the error type for
// programmatic handling. Validation errors are terminal for the current
// call: validators fail fast on the first violation found.
type ValidationError struct {
	// Type categorizes the validation failure.
	Type ValidationErrorType

	// Message is the human-readable error description.
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s validation error: %s", e.Type, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(errType ValidationErrorType, message string) *ValidationError {
	return &ValidationError{
		Type:    errType,
		Message: message,
	}
}

// IsValidationError checks if an error is a ValidationError
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsErrorOfType checks if an error is a ValidationError of the specified type
func IsErrorOfType(err error, errType ValidationErrorType) bool {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Type == errType
	}
	return false
}

// GetErrorType returns the type of a ValidationError, or empty string if not a ValidationError
func GetErrorType(err error) ValidationErrorType {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Type
	}
	return ""
}

// GetErrorMessage returns the message of a ValidationError, or empty string if not a ValidationError
func GetErrorMessage(err error) string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}
	return ""
}
