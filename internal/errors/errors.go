// Package errors provides structured error handling for the spec-kit-assistant CLI.
// It includes categorized errors with actionable remediation guidance.
package errors

import goerrors "errors"

// ErrorCategory represents the type of error that occurred.
type ErrorCategory int

const (
	// Argument errors are caused by invalid or missing command arguments.
	Argument ErrorCategory = iota
	// Configuration errors are caused by invalid or unreadable configuration.
	Configuration
	// NotFound errors occur when the bundled command sources are missing or empty.
	NotFound
	// IO errors cover permission problems, full disks and unreadable paths.
	IO
	// Validation errors are reported when command files fail structural checks.
	Validation
)

// String returns a human-readable name for the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case NotFound:
		return "Not Found"
	case IO:
		return "I/O Error"
	case Validation:
		return "Validation Error"
	default:
		return "Error"
	}
}

// CLIError is a structured error with category and remediation guidance.
type CLIError struct {
	// Category is the type of error (Argument, IO, etc.)
	Category ErrorCategory
	// Message is a human-readable description of what went wrong.
	Message string
	// Remediation is a list of actionable steps to resolve the error.
	Remediation []string
	// Usage shows the correct command syntax (optional, for argument errors).
	Usage string
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CLIError) Unwrap() error {
	return e.Err
}

func newError(category ErrorCategory, message string, remediation []string) *CLIError {
	return &CLIError{Category: category, Message: message, Remediation: remediation}
}

// withCause attaches the underlying error.
func (e *CLIError) withCause(err error) *CLIError {
	e.Err = err
	return e
}

// NewArgumentError reports invalid or conflicting arguments.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return newError(Argument, message, remediation)
}

// NewArgumentErrorWithUsage is NewArgumentError plus the correct command syntax.
func NewArgumentErrorWithUsage(message, usage string, remediation ...string) *CLIError {
	err := NewArgumentError(message, remediation...)
	err.Usage = usage
	return err
}

// NewConfigError reports an invalid configuration.
func NewConfigError(message string, remediation ...string) *CLIError {
	return newError(Configuration, message, remediation)
}

// NewNotFoundError reports missing command sources or directories.
func NewNotFoundError(message string, remediation ...string) *CLIError {
	return newError(NotFound, message, remediation)
}

// NewIOError reports a filesystem failure.
func NewIOError(message string, remediation ...string) *CLIError {
	return newError(IO, message, remediation)
}

// NewValidationError reports command files that failed validation.
func NewValidationError(message string, remediation ...string) *CLIError {
	return newError(Validation, message, remediation)
}

// Wrap wraps an existing error with a CLIError, preserving the original message.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     err.Error(),
		Remediation: remediation,
		Err:         err,
	}
}

// AsCLIError attempts to convert an error to a CLIError.
// Returns nil if the error chain holds no CLIError.
func AsCLIError(err error) *CLIError {
	var cliErr *CLIError
	if goerrors.As(err, &cliErr) {
		return cliErr
	}
	return nil
}
