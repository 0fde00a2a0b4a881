// Package errors provides custom error types for the tablestack system.
// These errors enable programmatic error checking and make the distinction
// between fatal run-level failures and recoverable per-file issues explicit.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the tablestack system
var (
	// ErrNoFiles indicates that the input directory contained no data files
	ErrNoFiles = errors.New("no files found")

	// ErrUnknownTable indicates that a table name has no entry in the table-type dictionary
	ErrUnknownTable = errors.New("unknown table")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrTooManyWorkers indicates a worker count above the machine's core count
	ErrTooManyWorkers = errors.New("worker count exceeds available cores")

	// ErrBadFileName indicates a file name that does not follow the publication grammar
	ErrBadFileName = errors.New("malformed file name")
)

// ConfigurationError represents an invalid run configuration detected
// before any work starts. Always fatal.
type ConfigurationError struct {
	Parameter string
	Value     any
	Message   string
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	if e.Parameter != "" {
		return fmt.Sprintf("configuration error for %s=%v: %s", e.Parameter, e.Value, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Is implements errors.Is support
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(parameter string, value any, message string) *ConfigurationError {
	return &ConfigurationError{Parameter: parameter, Value: value, Message: message}
}

// ClassificationError represents a file whose table name could not be
// resolved against the table-type dictionary. Fatal: an unclassifiable
// file means the table inventory cannot be trusted.
type ClassificationError struct {
	File  string
	Table string
}

// Error implements the error interface
func (e *ClassificationError) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("cannot classify %s: table %q has no dictionary entry", e.File, e.Table)
	}
	return fmt.Sprintf("cannot classify %s", e.File)
}

// Is implements errors.Is support
func (e *ClassificationError) Is(target error) bool {
	return target == ErrUnknownTable
}

// NewClassificationError creates a new ClassificationError
func NewClassificationError(file, table string) *ClassificationError {
	return &ClassificationError{File: file, Table: table}
}

// MergeError represents a failure while stacking one table's file set.
// Fatal to the run: a silently incomplete stacked table is worse than a
// failed run.
type MergeError struct {
	Table string
	File  string
	Err   error
}

// Error implements the error interface
func (e *MergeError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("merge failed for table %s (file %s): %v", e.Table, e.File, e.Err)
	}
	return fmt.Sprintf("merge failed for table %s: %v", e.Table, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *MergeError) Unwrap() error {
	return e.Err
}

// NewMergeError creates a new MergeError
func NewMergeError(table, file string, err error) *MergeError {
	return &MergeError{Table: table, File: file, Err: err}
}

// IOError represents a filesystem read or write failure with the path
// that triggered it.
type IOError struct {
	Operation string // "read", "write", "copy", "mkdir"
	Path      string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// WrapIO wraps a filesystem error with operation and path context.
// Returns nil if err is nil.
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Path: path, Err: err}
}

// Is reports whether any error in err's chain matches target.
// It's an alias for the standard library errors.Is.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// It's an alias for the standard library errors.As.
var As = errors.As
