// Package errors provides the structured CLI errors hashnav tooling
// reports. Each error carries a stable code, a category, and optionally
// a fix suggestion, so terminal output stays actionable.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig Category = "config"
	CategoryDev    Category = "dev"
	CategoryDeploy Category = "deploy"
	CategoryCLI    Category = "cli"
)

// CLIError is a structured error with a code and fix suggestion.
type CLIError struct {
	// Code is a unique error identifier (e.g., "H001").
	Code string

	// Category is the error type (config, dev, deploy, cli).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *CLIError) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a longer explanation to the error.
func (e *CLIError) WithDetail(format string, args ...any) *CLIError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *CLIError) WithSuggestion(s string) *CLIError {
	e.Suggestion = s
	return e
}

// Wrap attaches an underlying error.
func (e *CLIError) Wrap(err error) *CLIError {
	e.Wrapped = err
	return e
}

// Format renders the error for terminal output.
func (e *CLIError) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.Code, e.Message)
	if e.Detail != "" {
		fmt.Fprintf(&b, "\n  %s", e.Detail)
	}
	if e.Wrapped != nil {
		fmt.Fprintf(&b, "\n  cause: %v", e.Wrapped)
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "\n  hint: %s", e.Suggestion)
	}
	return b.String()
}

// New creates an error from a registered code. Unknown codes produce a
// generic CLI error carrying the code, not a panic.
func New(code string) *CLIError {
	if tmpl, ok := registry[code]; ok {
		return &CLIError{
			Code:       code,
			Category:   tmpl.Category,
			Message:    tmpl.Message,
			Detail:     tmpl.Detail,
			Suggestion: tmpl.Suggestion,
		}
	}
	return &CLIError{
		Code:     code,
		Category: CategoryCLI,
		Message:  "unknown error",
	}
}

// AsCLIError extracts a *CLIError from an error chain.
func AsCLIError(err error) (*CLIError, bool) {
	var ce *CLIError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
