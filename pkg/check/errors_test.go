package check

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("expected '=' after key")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"no input", &NoInputFilesError{Pattern: "commands/*.toml"}, "no commands/*.toml files found"},
		{"malformed with position", &MalformedTomlError{Path: "commands/a.toml", Line: 3, Column: 7, Err: cause},
			"error parsing commands/a.toml (line 3, column 7): expected '=' after key"},
		{"malformed without position", &MalformedTomlError{Path: "commands/a.toml", Err: cause},
			"error parsing commands/a.toml: expected '=' after key"},
		{"empty file", &EmptyFileError{Path: "prompts/a.md"}, "empty markdown file: prompts/a.md"},
		{"missing tool", &MissingToolError{Tool: "mdl"}, "missing mdl: not found in PATH"},
		{"unusable tool", &MissingToolError{Tool: "mdl", Reason: "version 0.5.0 does not satisfy >= 0.12"},
			"unusable mdl: version 0.5.0 does not satisfy >= 0.12"},
		{"lint exit", &LintFailureError{Tool: "mdl", ExitCode: 1}, "mdl reported issues (exit status 1)"},
		{"lint start failure", &LintFailureError{Tool: "mdl", ExitCode: -1, Err: cause}, "mdl failed: expected '=' after key"},
		{"schema field", &SchemaError{Path: "commands/a.toml", Field: "prompt", Reason: "is required"},
			"commands/a.toml: prompt is required"},
		{"schema no field", &SchemaError{Path: "prompts/a.md", Reason: "missing frontmatter"},
			"prompts/a.md: missing frontmatter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")

	assert.ErrorIs(t, &MalformedTomlError{Path: "x.toml", Err: cause}, cause)
	assert.ErrorIs(t, &LintFailureError{Tool: "mdl", ExitCode: 1, Err: cause}, cause)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"plain error", errors.New("boom"), ExitError},
		{"no input", &NoInputFilesError{}, ExitNoInputFiles},
		{"malformed", &MalformedTomlError{}, ExitMalformed},
		{"empty", &EmptyFileError{}, ExitEmptyFile},
		{"missing tool", &MissingToolError{}, ExitMissingTool},
		{"lint failure", &LintFailureError{}, ExitLintFailure},
		{"schema", &SchemaError{}, ExitSchema},
		{"wrapped", fmt.Errorf("check failed: %w", &EmptyFileError{Path: "a.md"}), ExitEmptyFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
