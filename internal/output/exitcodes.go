// Package output provides structured output and error handling for the qareport CLI.
package output

import "errors"

// Exit codes. Every failure kind exits with ExitFailure so callers and
// scripts only need to distinguish success from failure.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Kind classifies a CLI failure.
type Kind string

// Failure kinds surfaced by qareport.
const (
	KindUsage         Kind = "usage"
	KindInputNotFound Kind = "input_not_found"
	KindParse         Kind = "parse"
	KindWrite         Kind = "write"
	KindInternal      Kind = "internal"
)

// ExitError is an error that carries an exit code and failure kind for the CLI.
type ExitError struct {
	Code    int
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUsageError creates an error for bad invocations (missing arguments, bad flags).
func NewUsageError(message string) *ExitError {
	return &ExitError{Code: ExitFailure, Kind: KindUsage, Message: message}
}

// NewInputNotFoundError creates an error for a missing input file.
func NewInputNotFoundError(path string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitFailure,
		Kind:    KindInputNotFound,
		Message: "input file not found: " + path,
		Cause:   cause,
	}
}

// NewParseError creates an error for malformed input.
func NewParseError(message string, cause error) *ExitError {
	return &ExitError{Code: ExitFailure, Kind: KindParse, Message: message, Cause: cause}
}

// NewWriteError creates an error for an output destination that cannot be written.
func NewWriteError(message string, cause error) *ExitError {
	return &ExitError{Code: ExitFailure, Kind: KindWrite, Message: message, Cause: cause}
}

// NewInternalError creates an error for any other failure.
func NewInternalError(message string, cause error) *ExitError {
	return &ExitError{Code: ExitFailure, Kind: KindInternal, Message: message, Cause: cause}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitFailure for untyped errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}

// GetKind extracts the failure kind from an error.
// Untyped errors report KindInternal; nil reports "".
func GetKind(err error) Kind {
	if err == nil {
		return ""
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Kind
	}
	return KindInternal
}
