// Package errors provides structured error types for chartopt.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the chart core, CLI and API
//   - Machine-readable error codes for programmatic handling
//   - Reporting every chart violation from a single validation pass
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - NOT_FOUND_*: Resource not found
//   - INTERNAL_*: Unexpected internal errors
//
// Chart violations found by finalize carry their own codes
// (DUPLICATE_AXIS_DIMENSION, DIMENSION_MISMATCH, ...) and are collected in a
// [ValidationError].
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "invalid chart id: %s", id)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidFormat, origErr, "failed to decode %s", path)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Chart violations reported by finalize
	ErrCodeDuplicateAxisDimension Code = "DUPLICATE_AXIS_DIMENSION"
	ErrCodeInvalidRange           Code = "INVALID_RANGE"
	ErrCodeDimensionMismatch      Code = "DIMENSION_MISMATCH"
	ErrCodeEmptyCategoryList      Code = "EMPTY_CATEGORY_LIST"
	ErrCodeDanglingDimension      Code = "DANGLING_DIMENSION_REFERENCE"
	ErrCodeInvalidDimension       Code = "INVALID_DIMENSION"
	ErrCodeCategoryBounds         Code = "CATEGORY_BOUNDS"
	ErrCodeTypeMismatch           Code = "TYPE_MISMATCH"
	ErrCodeUnknownCategory        Code = "UNKNOWN_CATEGORY"
	ErrCodeInvalidColorRamp       Code = "INVALID_COLOR_RAMP"
	ErrCodeNonFiniteValue         Code = "NON_FINITE_VALUE"

	// Resource not found errors
	ErrCodeNotFound      Code = "NOT_FOUND"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"
	ErrCodeChartNotFound Code = "CHART_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err, or any error in its tree, is an *Error with the
// given code. Unlike a plain errors.As lookup it visits every branch of
// multi-error values such as [ValidationError].
func Is(err error, code Code) bool {
	if err == nil {
		return false
	}
	if e, ok := err.(*Error); ok && e.Code == code {
		return true
	}
	switch u := err.(type) {
	case interface{ Unwrap() []error }:
		for _, inner := range u.Unwrap() {
			if Is(inner, code) {
				return true
			}
		}
	case interface{ Unwrap() error }:
		return Is(u.Unwrap(), code)
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// ValidationError collects every violation found while finalizing a chart.
// It is never returned empty.
type ValidationError struct {
	Violations []*Error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Violations) == 1 {
		return "chart validation failed: " + e.Violations[0].Error()
	}
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Error()
	}
	return fmt.Sprintf("chart validation failed with %d violations: %s",
		len(e.Violations), strings.Join(msgs, "; "))
}

// Unwrap exposes the individual violations to errors.Is/As.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, len(e.Violations))
	for i, v := range e.Violations {
		errs[i] = v
	}
	return errs
}

// Has reports whether any violation carries code.
func (e *ValidationError) Has(code Code) bool {
	return e.Count(code) > 0
}

// Count returns the number of violations carrying code.
func (e *ValidationError) Count(code Code) int {
	n := 0
	for _, v := range e.Violations {
		if v.Code == code {
			n++
		}
	}
	return n
}

// AsValidation extracts a *ValidationError from err's chain.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
