// Package errors defines the failure conditions surfaced to foresite users
// and maps them to process exit codes.
package errors

import (
	"errors"
	"fmt"
)

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates a validation or fatal failure.
	ExitFailure = 1
)

// Sentinel errors for known conditions.
var (
	// ErrDirectoryNotFound indicates the root directory does not exist.
	ErrDirectoryNotFound = errors.New("directory not found")

	// ErrPermissionDenied indicates the root directory is not writable.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrMissingSubdirectories indicates init has not been run for the root.
	ErrMissingSubdirectories = errors.New("missing subdirectories")

	// ErrNoSourceFiles indicates a build was requested with zero posts.
	ErrNoSourceFiles = errors.New("no markdown files")

	// ErrTemplateNotFound indicates a template file is absent.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrUndefinedVariable indicates a template referenced a variable
	// that was not supplied.
	ErrUndefinedVariable = errors.New("undefined variable")

	// ErrMissingTitle indicates no heading line could be found in a post.
	ErrMissingTitle = errors.New("missing title")
)

// ExitError wraps an error with an exit code and the exact line shown to the user.
type ExitError struct {
	Err     error
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with exit code 1 and a user-facing message.
func NewExitError(err error, format string, args ...any) *ExitError {
	return &ExitError{Err: err, Code: ExitFailure, Message: fmt.Sprintf(format, args...)}
}

// ExitCodeFromError determines the exit code for an error.
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

// Join returns an error that wraps the given errors.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// DirectoryNotFound reports a nonexistent root directory.
func DirectoryNotFound(root string) error {
	return NewExitError(ErrDirectoryNotFound, "Nonexistent directory %s", root)
}

// PermissionDenied reports a root directory that cannot be written to.
func PermissionDenied(root string) error {
	return NewExitError(ErrPermissionDenied, "Cannot write to directory %s", root)
}

// MissingSubdirectories reports a root on which init has not been run.
func MissingSubdirectories() error {
	return NewExitError(ErrMissingSubdirectories, "Missing subdirectories, try running `foresite init`")
}

// NoSourceFiles reports a build with nothing to build.
func NoSourceFiles() error {
	return NewExitError(ErrNoSourceFiles, "No markdown files, try running `foresite touch`")
}
