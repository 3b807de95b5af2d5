// Package errs defines the error values returned by the calendar and span
// arithmetic when a value leaves its representable range.
package errs

import (
	"errors"
	"fmt"
)

// Base error types
var (
	// ErrOutOfRange is returned when an argument or a computed field lies
	// outside its valid domain (for example month 13 or year 10000).
	ErrOutOfRange = errors.New("value out of range")

	// ErrOverflow is returned when 64-bit tick arithmetic would wrap.
	ErrOverflow = errors.New("arithmetic overflow")

	// ErrSyntax is returned when a textual date-time does not match the
	// fixed layout.
	ErrSyntax = errors.New("invalid date-time syntax")
)

// RangeError describes a domain or range violation.
type RangeError struct {
	Op    string // operation, e.g. "datetime.AddMonths"
	Field string // argument or field name, e.g. "month"
	Value int64
	Min   int64
	Max   int64
	Err   error
}

// Error implements the error interface for RangeError
func (e *RangeError) Error() string {
	if e.Min == 0 && e.Max == 0 {
		return fmt.Sprintf("%s: %s %d: %v", e.Op, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: %s %d not in [%d, %d]: %v", e.Op, e.Field, e.Value, e.Min, e.Max, e.Err)
}

// Unwrap returns the underlying error
func (e *RangeError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *RangeError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "range_error",
		"op":         e.Op,
		"field":      e.Field,
		"value":      e.Value,
		"min":        e.Min,
		"max":        e.Max,
		"error":      e.Err.Error(),
	}
}

// OutOfRange creates a RangeError wrapping ErrOutOfRange.
func OutOfRange(op, field string, value, min, max int64) error {
	return &RangeError{Op: op, Field: field, Value: value, Min: min, Max: max, Err: ErrOutOfRange}
}

// Overflow creates a RangeError wrapping ErrOverflow. Value is the operand
// that could not be applied.
func Overflow(op, field string, value int64) error {
	return &RangeError{Op: op, Field: field, Value: value, Err: ErrOverflow}
}

// IsRangeError reports whether err is, or wraps, a *RangeError.
func IsRangeError(err error) bool {
	var re *RangeError
	return errors.As(err, &re)
}
