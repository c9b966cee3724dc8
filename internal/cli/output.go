package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Domain error or violated law
	ExitCommandError = 2 // Usage error: bad arity, unparsable argument, unknown op
)

// Error codes reported in structured output.
const (
	ErrCodeUsage  = "E001"
	ErrCodeDomain = "E002"
	ErrCodeLaw    = "E003"
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
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

// OutputFormatter writes results as text, JSON or YAML.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Response is the envelope for structured (JSON/YAML) output.
type Response struct {
	Status string    `json:"status" yaml:"status"`                   // "ok" or "error"
	Data   any       `json:"data,omitempty" yaml:"data,omitempty"`   // success payload
	Error  *ErrorDTO `json:"error,omitempty" yaml:"error,omitempty"` // error details
}

// ErrorDTO is the error structure for structured responses.
type ErrorDTO struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// Success outputs a successful result in the configured format. Text output
// prints data with its String method when it has one.
func (f *OutputFormatter) Success(data any) error {
	return f.write(Response{Status: "ok", Data: data}, func() {
		fmt.Fprintln(f.Writer, data)
	})
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string) error {
	return f.write(Response{Status: "error", Error: &ErrorDTO{Code: code, Message: message}}, func() {
		fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	})
}

func (f *OutputFormatter) write(resp Response, text func()) error {
	switch f.Format {
	case "json":
		return json.NewEncoder(f.Writer).Encode(resp)
	case "yaml":
		enc := yaml.NewEncoder(f.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(resp); err != nil {
			return err
		}
		return enc.Close()
	default:
		text()
		return nil
	}
}

// fail reports err through the formatter and returns it as an ExitError.
func (f *OutputFormatter) fail(exitCode int, errCode string, err error) error {
	if werr := f.Error(errCode, err.Error()); werr != nil {
		return werr
	}
	return WrapExitError(exitCode, errCode, err)
}
