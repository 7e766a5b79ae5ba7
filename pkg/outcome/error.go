package outcome

import (
	"errors"
	"log/slog"
)

// Code identifies a failure condition in a machine-readable way. Each
// operation documents its own closed set of codes.
type Code string

// Error is a structured operation error. Code is always present and drawn
// from the owning operation's documented set; Message is always non-empty.
// Both invariants are the creator's responsibility, construction itself is
// total. Error values are never mutated after creation.
type Error struct {
	Code    Code
	Message string
	Details map[string]any
	Cause   error
}

// NewError builds an Error from a code, message and optional details map.
func NewError(code Code, message string, details map[string]any) *Error {
	return &Error{Code: code, Message: message, Details: details}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *Error) WithCause(cause error) *Error {
	return &Error{Code: e.Code, Message: e.Message, Details: e.Details, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return string(e.Code) + ": " + e.Message + ": " + e.Cause.Error()
	}
	return string(e.Code) + ": " + e.Message
}

// Unwrap exposes the cause to errors.Is and errors.As chains.
func (e *Error) Unwrap() error {
	return e.Cause
}

// LogValue renders the error as a structured group so slog-based sinks see
// the code and diagnostic details, not just the formatted message.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 4)
	attrs = append(attrs,
		slog.String("code", string(e.Code)),
		slog.String("message", e.Message),
	)
	if len(e.Details) > 0 {
		attrs = append(attrs, slog.Any("details", e.Details))
	}
	if e.Cause != nil {
		attrs = append(attrs, slog.Any("cause", e.Cause))
	}
	return slog.GroupValue(attrs...)
}

// CodeOf extracts the code from err if it wraps an *Error, or "" otherwise.
func CodeOf(err error) Code {
	var oe *Error
	if errors.As(err, &oe) {
		return oe.Code
	}
	return ""
}

// HasCode reports whether err wraps an *Error with the given code.
func HasCode(err error, code Code) bool {
	return CodeOf(err) == code
}
