package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/vertti/repovalidate/pkg/check"
	"github.com/vertti/repovalidate/pkg/output"
)

// ErrCheckFailed is returned when a check fails. The failure has already
// been printed, so main only turns it into an exit code.
var ErrCheckFailed = errors.New("check failed")

// runCheck executes a check, prints the result, and returns an error if failed.
// The returned error wraps the check's typed error for exit code mapping.
func runCheck(ctx context.Context, c check.Checker) error {
	result := c.Run(ctx)
	output.PrintResult(result)

	if !result.OK() {
		if result.Err == nil {
			return ErrCheckFailed
		}
		return fmt.Errorf("%w: %w", ErrCheckFailed, result.Err)
	}
	return nil
}
