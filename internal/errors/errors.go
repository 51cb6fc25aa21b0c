// Package errors provides sentinel errors and exit code handling for fastapi-gen.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fatal generation failure categories.
var (
	// ErrInvalidName indicates the project name does not match the allowed grammar.
	ErrInvalidName = errors.New("invalid project name")

	// ErrDestinationExists indicates the destination directory already exists.
	ErrDestinationExists = errors.New("destination already exists")

	// ErrTemplateNotFound indicates the template identifier could not be resolved.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrCopy indicates an I/O failure while copying the template tree.
	ErrCopy = errors.New("copy failed")

	// ErrRewrite indicates an I/O failure while rewriting identifiers.
	ErrRewrite = errors.New("rewrite failed")
)

// Exit codes per the CLI contract. Generation defines no codes beyond these two.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates any fatal generation failure.
	ExitFailure = 1
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the process exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}

// WrapInvalidName wraps an error with ErrInvalidName.
func WrapInvalidName(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrInvalidName)
}

// WrapCopy wraps an error with ErrCopy.
func WrapCopy(err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrCopy, err)
}

// WrapRewrite wraps an error with ErrRewrite.
func WrapRewrite(err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrRewrite, err)
}
