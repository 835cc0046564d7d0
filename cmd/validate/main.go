package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vertti/repovalidate/pkg/check"
	"github.com/vertti/repovalidate/pkg/output"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil && !errors.Is(err, ErrCheckFailed) {
		output.PrintError(err)
	}
	os.Exit(exitCode(err))
}

var rootCmd = &cobra.Command{
	Use:   "validate [toml|markdown|all]",
	Short: "Validate commands/*.toml and prompts/*.md",
	Long: `Validate repository inputs.

  toml      every commands/*.toml file parses
  markdown  every prompts/*.md file is non-empty and passes the Markdown linter
  all       both, TOML first (default)

Exit codes:
  0 ok, 1 error, 2 usage, 3 no input files, 4 malformed TOML,
  5 empty Markdown file, 6 missing lint tool, 7 lint failure, 8 strict schema violation`,
	Version:       Version,
	ValidArgs:     []string{kindTOML, kindMarkdown, kindAll},
	Args:          validateKindArgs,
	SilenceErrors: true,
	RunE:          runValidate,
}

// usageError marks errors caused by bad arguments or flags.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func init() {
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err}
	})
}

func exitCode(err error) int {
	var usage *usageError
	switch {
	case err == nil:
		return check.ExitOK
	case errors.As(err, &usage):
		return check.ExitUsage
	case errors.Is(err, ErrCheckFailed):
		return check.ExitCode(err)
	default:
		return check.ExitError
	}
}
