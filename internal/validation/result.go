// Package validation checks protocol files against their schema documents and
// reports every violation with its location.
package validation

import (
	"errors"
	"fmt"
	"strings"

	clierrors "github.com/royalbit/asimov/internal/errors"
	"github.com/royalbit/asimov/internal/schema"
)

// ValidationError represents a single validation error with location and context.
type ValidationError struct {
	Path     string // Dotted field location (e.g., "next[2].version")
	Line     int    // 1-based line number in source file
	Column   int    // 1-based column number in source file
	Message  string // Human-readable error description
	Expected string // What was expected (type, value, format)
	Actual   string // What was found
	Hint     string // Suggestion for fixing the error
	Cause    error  // ErrParseFailure, ErrSchemaViolation or ErrIO
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&sb, "line %d", e.Line)
		if e.Column > 0 {
			fmt.Fprintf(&sb, ":%d", e.Column)
		}
		sb.WriteString(": ")
	}
	if e.Path != "" {
		fmt.Fprintf(&sb, "%s: ", e.Path)
	}
	sb.WriteString(e.Message)
	return sb.String()
}

// Unwrap returns the fault category.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// FormatFull returns a detailed, multi-line error message.
func (e *ValidationError) FormatFull() string {
	var sb strings.Builder

	if e.Line > 0 {
		fmt.Fprintf(&sb, "  Line %d", e.Line)
		if e.Column > 0 {
			fmt.Fprintf(&sb, ", Column %d", e.Column)
		}
		sb.WriteString("\n")
	}
	if e.Path != "" {
		fmt.Fprintf(&sb, "  Path: %s\n", e.Path)
	}
	fmt.Fprintf(&sb, "  Error: %s\n", e.Message)
	if e.Expected != "" {
		fmt.Fprintf(&sb, "  Expected: %s\n", e.Expected)
	}
	if e.Actual != "" {
		fmt.Fprintf(&sb, "  Got: %s\n", e.Actual)
	}
	if e.Hint != "" {
		fmt.Fprintf(&sb, "  Hint: %s\n", e.Hint)
	}
	return sb.String()
}

// Result is the outcome of validating one protocol file.
type Result struct {
	File        string             // Path of the validated file
	Kind        schema.Kind        // Kind selected by the registry
	Valid       bool               // True if no errors were found
	Errors      []*ValidationError // All errors, in document order
	Warnings    []string           // Non-fatal findings such as size limits
	Regenerated bool               // True if the file was rewritten in this run
}

func newResult(file string, kind schema.Kind) *Result {
	return &Result{File: file, Kind: kind, Valid: true}
}

// HasErrors returns true if there are any validation errors.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// AddError adds a validation error to the result.
func (r *Result) AddError(err *ValidationError) {
	r.Errors = append(r.Errors, err)
	r.Valid = false
}

// AddWarning records a non-fatal finding.
func (r *Result) AddWarning(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Err returns nil for a valid result, otherwise an error joining every
// ValidationError so errors.Is can test the fault category.
func (r *Result) Err() error {
	if r.Valid {
		return nil
	}
	errs := make([]error, 0, len(r.Errors))
	for _, e := range r.Errors {
		errs = append(errs, e)
	}
	return fmt.Errorf("%s: %w", r.File, errors.Join(errs...))
}

// CountCause returns how many errors carry the given fault category.
func (r *Result) CountCause(cause error) int {
	n := 0
	for _, e := range r.Errors {
		if errors.Is(e, cause) {
			n++
		}
	}
	return n
}

func schemaError(path string, line, column int, message string) *ValidationError {
	return &ValidationError{
		Path:    path,
		Line:    line,
		Column:  column,
		Message: message,
		Cause:   clierrors.ErrSchemaViolation,
	}
}
