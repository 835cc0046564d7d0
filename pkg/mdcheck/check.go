package mdcheck

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/vertti/repovalidate/pkg/check"
	"github.com/vertti/repovalidate/pkg/fileset"
	"github.com/vertti/repovalidate/pkg/version"
)

const (
	DefaultDir  = "prompts"
	DefaultGlob = "*.md"
	DefaultTool = "mdl"
)

// Check verifies that every Markdown file in a directory is non-empty and lint-clean.
type Check struct {
	Dir         string   // directory relative to Root (default: prompts)
	Glob        string   // file pattern inside Dir (default: *.md)
	Strict      bool     // --strict: require frontmatter and body content
	Tool        string   // lint executable name or path relative to the caller's cwd (default: mdl)
	ToolArgs    []string // arguments placed before the file list
	ToolVersion string   // semver constraint the tool must satisfy (empty = any)
	Root        string   // working directory for the lint tool
	FS          fs.FS    // view of Root
	Runner      Runner   // injected for testing
}

// Pattern returns the root-relative glob this check validates.
func (c *Check) Pattern() string {
	dir, glob := c.Dir, c.Glob
	if dir == "" {
		dir = DefaultDir
	}
	if glob == "" {
		glob = DefaultGlob
	}
	return fileset.Pattern(dir, glob)
}

func (c *Check) tool() string {
	if c.Tool == "" {
		return DefaultTool
	}
	return c.Tool
}

// Run executes the Markdown check. Emptiness is checked for every file
// before the lint tool is looked up or run.
func (c *Check) Run(ctx context.Context) check.Result {
	pattern := c.Pattern()
	result := check.Result{
		Name: fmt.Sprintf("markdown: %s", pattern),
	}

	set, err := fileset.Discover(c.FS, pattern)
	if err != nil {
		return result.FailErr(err)
	}

	for _, path := range set.Paths {
		info, err := fs.Stat(c.FS, path)
		if err != nil {
			return result.Failf("stat failed for %s: %v", path, err)
		}
		if info.Size() == 0 {
			return result.FailErr(&check.EmptyFileError{Path: path})
		}
	}

	if c.Strict {
		for _, path := range set.Paths {
			source, err := fs.ReadFile(c.FS, path)
			if err != nil {
				return result.Failf("failed to read %s: %v", path, err)
			}
			if err := ValidateDocument(path, source); err != nil {
				return result.FailErr(err)
			}
		}
	}

	tool := c.tool()
	toolPath, err := c.Runner.LookPath(tool)
	if err != nil {
		return result.FailErr(&check.MissingToolError{Tool: tool})
	}
	// The tool runs with Dir set to Root, so a relative path must be pinned first.
	if !filepath.IsAbs(toolPath) {
		abs, err := filepath.Abs(toolPath)
		if err != nil {
			return result.FailErr(&check.MissingToolError{Tool: tool, Reason: err.Error()})
		}
		toolPath = abs
	}
	result.AddDetailf("tool: %s", toolPath)

	if c.ToolVersion != "" {
		if err := c.checkToolVersion(ctx, tool, toolPath, &result); err != nil {
			return result
		}
	}

	args := make([]string, 0, len(c.ToolArgs)+set.Len())
	args = append(args, c.ToolArgs...)
	for _, path := range set.Paths {
		args = append(args, filepath.FromSlash(path))
	}

	stdout, stderr, err := c.Runner.RunCommandContext(ctx, c.Root, toolPath, args...)
	if err != nil {
		if ctx.Err() != nil {
			return result.Fail(fmt.Sprintf("%s interrupted: %v", tool, ctx.Err()), ctx.Err())
		}
		lintErr := &check.LintFailureError{Tool: tool, ExitCode: -1, Err: err}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			lintErr.ExitCode = exitErr.ExitCode()
		}
		result.FailErr(lintErr)
		addOutput(&result, stdout)
		addOutput(&result, stderr)
		return result
	}

	return result.Pass(set.Len())
}

func (c *Check) checkToolVersion(ctx context.Context, tool, toolPath string, result *check.Result) error {
	constraint, err := version.ParseConstraint(c.ToolVersion)
	if err != nil {
		result.FailErr(err)
		return err
	}

	stdout, stderr, err := c.Runner.RunCommandContext(ctx, c.Root, toolPath, "--version")
	if err != nil {
		missing := &check.MissingToolError{Tool: tool, Reason: fmt.Sprintf("version command failed: %v", err)}
		result.FailErr(missing)
		return missing
	}

	output := stdout
	if strings.TrimSpace(output) == "" {
		output = stderr
	}

	v, err := version.Satisfies(output, constraint)
	if err != nil {
		missing := &check.MissingToolError{Tool: tool, Reason: err.Error()}
		result.FailErr(missing)
		return missing
	}
	result.AddDetailf("version: %s", v)
	return nil
}

// addOutput appends the non-blank lines of tool output as details.
func addOutput(result *check.Result, output string) {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r ")
		if strings.TrimSpace(line) != "" {
			result.AddDetail(line)
		}
	}
}
