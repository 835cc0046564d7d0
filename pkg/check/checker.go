package check

import "context"

// Checker is implemented by all check kinds.
// Each check validates one set of repository files
// and returns a Result indicating success or failure.
//
// Implementations:
//   - tomlcheck.Check: commands/*.toml parse cleanly
//   - mdcheck.Check: prompts/*.md are non-empty and lint-clean
type Checker interface {
	Run(ctx context.Context) Result
}
