package mdcheck

import (
	"bytes"
	"context"
	"os/exec"
)

// Runner abstracts lint tool execution for testability.
type Runner interface {
	LookPath(file string) (string, error)
	RunCommandContext(ctx context.Context, dir, name string, args ...string) (stdout, stderr string, err error)
}

// RealRunner implements Runner using actual OS commands.
type RealRunner struct{}

// LookPath searches for an executable in PATH.
func (r *RealRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// RunCommandContext executes a command in dir and returns its output.
// The process is killed if ctx is cancelled.
func (r *RealRunner) RunCommandContext(ctx context.Context, dir, name string, args ...string) (stdout, stderr string, err error) {
	// #nosec G204 -- the lint command is chosen by the repository owner via flags or .validate.toml.
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err = cmd.Run()
	return outBuf.String(), errBuf.String(), err
}
