// Package clierr defines typed CLI errors carrying a machine-readable code.
package clierr

import "fmt"

// Error codes, one per failure class of the converter.
const (
	Usage         = "USAGE"
	NotFound      = "NOT_FOUND"
	ParseError    = "PARSE_ERROR"
	InvalidConfig = "INVALID_CONFIG"
	OutputExists  = "OUTPUT_EXISTS"
	Invalid       = "INVALID"
	InternalError = "INTERNAL_ERROR"
)

// Error is a CLI error with a code and optional details.
type Error struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
}

// New creates an Error.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error whose message is err's message.
func Wrap(code string, err error) *Error {
	return &Error{Code: code, Message: err.Error(), Err: err}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WithDetails attaches structured details and returns e.
func (e *Error) WithDetails(details map[string]any) *Error {
	e.Details = details
	return e
}

// ExitCode maps the code to a process exit status: 2 for internal and
// usage errors, 1 for everything else.
func (e *Error) ExitCode() int {
	switch e.Code {
	case InternalError, Usage:
		return 2 //nolint:mnd // exit code 2 for internal and usage errors
	default:
		return 1
	}
}

// SilentError carries an exit code whose message has already been printed.
type SilentError struct {
	Code int
}

func (e *SilentError) Error() string {
	return fmt.Sprintf("exit %d", e.Code)
}
