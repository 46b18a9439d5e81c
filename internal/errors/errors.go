package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorRemote   = 3   // Indicates a remote call reported a failure status.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// TimeoutError represents an operation that exceeded its time bound. It
// captures the operation name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
//
// Returns:
//   - string: The error message string.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// Timeout reports true so TimeoutError satisfies the net.Error timeout check.
func (e TimeoutError) Timeout() bool { return true }

// ValidationError represents an input validation failure raised before any
// remote call is attempted. It identifies which field failed validation,
// provides a human-readable explanation and an optional detail string.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
	// Detail carries additional context, such as the expected format.
	Detail string
}

// Error returns a formatted message describing the validation failure.
//
// Returns:
//   - string: The error message string.
func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// RemoteCallError represents a failed remote call with an associated status
// code. A zero StatusCode is reported as 500.
type RemoteCallError struct {
	// Message explains the failure.
	Message string
	// StatusCode is the status reported by the remote side.
	StatusCode int
}

// Error returns the message together with the effective status code.
func (e RemoteCallError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status())
}

// Status returns the status code, defaulting to 500.
func (e RemoteCallError) Status() int {
	if e.StatusCode == 0 {
		return 500
	}
	return e.StatusCode
}

// RemoteMessage returns the message reported by the remote side.
func (e RemoteCallError) RemoteMessage() string { return e.Message }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error to the process exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, context.Canceled) {
		return ExitErrorCanceled
	}
	var cfgErr ConfigError
	if errors.As(err, &cfgErr) {
		return ExitErrorConfig
	}
	var valErr ValidationError
	if errors.As(err, &valErr) {
		return ExitErrorConfig
	}
	var norm *NormalizedError
	if errors.As(err, &norm) {
		switch norm.Kind {
		case KindTimeout:
			return ExitErrorTimeout
		case KindRemoteStatus:
			return ExitErrorRemote
		}
		return ExitErrorGeneric
	}
	var timeoutErr TimeoutError
	if errors.As(err, &timeoutErr) || errors.Is(err, context.DeadlineExceeded) {
		return ExitErrorTimeout
	}
	return ExitErrorGeneric
}
