package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors. ErrSchema is the only kind an evaluation run is
// allowed to fail with; coercion and path misses are recovered inside the
// comparators as zero outcomes and never surface as errors.
var (
	ErrSchema       = errors.New("schema violation")
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	ErrInternal     = errors.New("internal error")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// SchemaError marks a document that failed top-level validation. The CLI
// boundary maps this to a nonzero exit; nothing inside the core raises it.
func SchemaError(message string, cause error) *AppError {
	return &AppError{Code: "SCHEMA_ERROR", Message: message, Cause: cause}
}

func SchemaErrorf(format string, args ...interface{}) *AppError {
	return SchemaError(fmt.Sprintf(format, args...), ErrSchema)
}

// IsSchemaError reports whether err originated from input validation.
func IsSchemaError(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == "SCHEMA_ERROR"
	}
	return false
}
