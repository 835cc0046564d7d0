package check

import (
	"errors"
	"fmt"
)

// Exit codes reported by the validate binary.
const (
	ExitOK           = 0
	ExitError        = 1
	ExitUsage        = 2
	ExitNoInputFiles = 3
	ExitMalformed    = 4
	ExitEmptyFile    = 5
	ExitMissingTool  = 6
	ExitLintFailure  = 7
	ExitSchema       = 8
)

// NoInputFilesError is returned when a glob matches no files.
type NoInputFilesError struct {
	Pattern string // e.g., "commands/*.toml"
}

func (e *NoInputFilesError) Error() string {
	return fmt.Sprintf("no %s files found", e.Pattern)
}

// MalformedTomlError is returned for the first TOML file that fails to parse.
// Line and Column are 1-based and zero when the parser gave no position.
type MalformedTomlError struct {
	Path   string
	Line   int
	Column int
	Err    error
}

func (e *MalformedTomlError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("error parsing %s (line %d, column %d): %v", e.Path, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("error parsing %s: %v", e.Path, e.Err)
}

func (e *MalformedTomlError) Unwrap() error { return e.Err }

// EmptyFileError is returned for a zero-byte Markdown file.
type EmptyFileError struct {
	Path string
}

func (e *EmptyFileError) Error() string {
	return fmt.Sprintf("empty markdown file: %s", e.Path)
}

// MissingToolError is returned when the lint executable is absent from PATH
// or does not satisfy the configured version constraint.
type MissingToolError struct {
	Tool   string
	Reason string // empty when the tool is simply not installed
}

func (e *MissingToolError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unusable %s: %s", e.Tool, e.Reason)
	}
	return fmt.Sprintf("missing %s: not found in PATH", e.Tool)
}

// LintFailureError is returned when the lint tool exits non-zero.
// ExitCode is -1 when the tool could not be started or was killed.
type LintFailureError struct {
	Tool     string
	ExitCode int
	Err      error
}

func (e *LintFailureError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("%s reported issues (exit status %d)", e.Tool, e.ExitCode)
	}
	return fmt.Sprintf("%s failed: %v", e.Tool, e.Err)
}

func (e *LintFailureError) Unwrap() error { return e.Err }

// SchemaError is returned by strict mode when a document lacks a required field.
type SchemaError struct {
	Path   string
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("%s: %s %s", e.Path, e.Field, e.Reason)
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var (
		noInput   *NoInputFilesError
		malformed *MalformedTomlError
		empty     *EmptyFileError
		missing   *MissingToolError
		lint      *LintFailureError
		schema    *SchemaError
	)
	switch {
	case errors.As(err, &noInput):
		return ExitNoInputFiles
	case errors.As(err, &malformed):
		return ExitMalformed
	case errors.As(err, &empty):
		return ExitEmptyFile
	case errors.As(err, &missing):
		return ExitMissingTool
	case errors.As(err, &lint):
		return ExitLintFailure
	case errors.As(err, &schema):
		return ExitSchema
	default:
		return ExitError
	}
}
