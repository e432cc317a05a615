package errors

import (
	"errors"
	"fmt"
	"time"
)

// ToolError is the unified error type for tool invocations.
type ToolError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Tool is the wrapped tool the error relates to (e.g. "jlink", "jar").
	Tool string `json:"tool,omitempty"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *ToolError) Error() string {
	prefix := string(e.Code)
	if e.Tool != "" {
		prefix = fmt.Sprintf("%s [%s]", e.Code, e.Tool)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *ToolError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *ToolError) WithCause(cause error) *ToolError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *ToolError) WithDetail(key string, value any) *ToolError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new ToolError.
func New(code ErrorCode, tool, message string) *ToolError {
	return &ToolError{Code: code, Tool: tool, Message: message}
}

// --- Configuration error constructors ---

// InvalidOption creates a configuration error for an option value outside its
// documented domain. Prior builder state is expected to be left untouched by
// the failing setter.
func InvalidOption(tool, option string, value any, reason string) *ToolError {
	return &ToolError{
		Code: ErrCodeInvalidOption, Tool: tool,
		Message: fmt.Sprintf("option %s: %s", option, reason),
		Details: map[string]any{"option": option, "value": value},
	}
}

// MissingOption creates a configuration error for an absent required value.
func MissingOption(tool, option string) *ToolError {
	return &ToolError{
		Code: ErrCodeMissingOption, Tool: tool,
		Message: fmt.Sprintf("option %s is required", option),
		Details: map[string]any{"option": option},
	}
}

// MissingMode creates a configuration error for a run with no operation mode selected.
func MissingMode(tool string) *ToolError {
	return &ToolError{
		Code: ErrCodeMissingMode, Tool: tool,
		Message: "no operation mode selected",
	}
}

// MissingIndexTarget creates a configuration error for generate-index without
// a recorded target archive.
func MissingIndexTarget(tool string) *ToolError {
	return &ToolError{
		Code: ErrCodeMissingIndexTarget, Tool: tool,
		Message: "generate-index requires a target archive",
	}
}

// --- Launch error constructor ---

// Launch creates a launch error wrapping the OS-level spawn failure.
func Launch(tool string, cause error) *ToolError {
	return &ToolError{
		Code: ErrCodeLaunchFailed, Tool: tool,
		Message: "failed to start process",
		Cause:   cause,
	}
}

// --- Timeout error constructor ---

// Timeout creates a timeout error carrying the elapsed bound. The process has
// already been sent a termination request by the time this error is observable.
func Timeout(tool string, limit time.Duration) *ToolError {
	return &ToolError{
		Code: ErrCodeToolTimeout, Tool: tool,
		Message: fmt.Sprintf("timed out after %s", limit),
		Details: map[string]any{"timeout_ms": limit.Milliseconds()},
	}
}

// --- Kind predicates ---

// AsToolError extracts a ToolError from an error chain.
func AsToolError(err error) (*ToolError, bool) {
	var te *ToolError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}

// IsConfiguration reports whether err is a configuration error.
func IsConfiguration(err error) bool {
	te, ok := AsToolError(err)
	return ok && IsConfigurationCode(te.Code)
}

// IsLaunch reports whether err is a launch error.
func IsLaunch(err error) bool {
	te, ok := AsToolError(err)
	return ok && te.Code == ErrCodeLaunchFailed
}

// IsTimeout reports whether err is a timeout error.
func IsTimeout(err error) bool {
	te, ok := AsToolError(err)
	return ok && te.Code == ErrCodeToolTimeout
}
