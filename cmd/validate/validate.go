package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vertti/repovalidate/pkg/check"
	"github.com/vertti/repovalidate/pkg/config"
	"github.com/vertti/repovalidate/pkg/mdcheck"
	"github.com/vertti/repovalidate/pkg/output"
	"github.com/vertti/repovalidate/pkg/tomlcheck"
)

const (
	kindTOML     = "toml"
	kindMarkdown = "markdown"
	kindAll      = "all"
)

var (
	rootDir     string
	configPath  string
	strict      bool
	lintCmd     string
	lintArgs    []string
	lintVersion string
)

func init() {
	rootCmd.Flags().StringVarP(&rootDir, "dir", "C", "", `repository root (default: directory of .validate.toml, else ".")`)
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to "+config.FileName+" (default: search up from --dir)")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "require description/prompt keys and prompt frontmatter")
	rootCmd.Flags().StringVar(&lintCmd, "lint-cmd", "", `markdown lint executable (default "mdl")`)
	rootCmd.Flags().StringArrayVar(&lintArgs, "lint-arg", nil, "extra argument passed to the lint tool before the file list (repeatable)")
	rootCmd.Flags().StringVar(&lintVersion, "lint-version", "", `version constraint for the lint tool (e.g., ">= 0.12")`)
}

// validateKindArgs accepts at most one argument from ValidArgs.
func validateKindArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs)(cmd, args); err != nil {
		return &usageError{err}
	}
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	kind := kindAll
	if len(args) == 1 {
		kind = args[0]
	}

	root, cfgPath, cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if cfgPath != "" {
		output.PrintInfo("config: " + cfgPath)
	}

	for _, c := range checksFor(kind, root, cfg) {
		if err := runCheck(cmd.Context(), c); err != nil {
			return err
		}
	}
	return nil
}

// loadSettings resolves the repository root and merges flags over the config file.
// The returned config path is absolute, or empty when no file was loaded.
func loadSettings(cmd *cobra.Command) (root, cfgPath string, cfg config.Config, err error) {
	flags := cmd.Flags()

	start := rootDir
	if start == "" {
		start = "."
	}

	cfg = config.Default()
	root = start
	path, err := config.FindFile(start, configPath)
	switch {
	case errors.Is(err, config.ErrNotFound):
	case err != nil:
		return "", "", cfg, err
	default:
		if cfg, err = config.Load(path); err != nil {
			return "", "", cfg, err
		}
		if cfgPath, err = filepath.Abs(path); err != nil {
			cfgPath = path
		}
		if !flags.Changed("dir") {
			root = filepath.Dir(path)
		}
	}

	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return "", "", cfg, fmt.Errorf("repository root %q is not a directory", root)
	}

	if flags.Changed("strict") {
		cfg.Strict = strict
	}
	if flags.Changed("lint-cmd") {
		cfg.Lint.Command = lintCmd
	}
	if flags.Changed("lint-arg") {
		cfg.Lint.Args = lintArgs
	}
	if flags.Changed("lint-version") {
		cfg.Lint.Version = lintVersion
	}

	if err := cfg.Validate(); err != nil {
		return "", "", cfg, &usageError{err}
	}
	return root, cfgPath, cfg, nil
}

// checksFor returns the checks for kind in run order. Under "all" TOML runs first.
func checksFor(kind, root string, cfg config.Config) []check.Checker {
	fsys := os.DirFS(root)

	tomlCheck := &tomlcheck.Check{
		Dir:    cfg.Commands.Dir,
		Glob:   cfg.Commands.Pattern,
		Strict: cfg.Strict,
		FS:     fsys,
	}
	mdCheck := &mdcheck.Check{
		Dir:         cfg.Prompts.Dir,
		Glob:        cfg.Prompts.Pattern,
		Strict:      cfg.Strict,
		Tool:        cfg.Lint.Command,
		ToolArgs:    cfg.Lint.Args,
		ToolVersion: cfg.Lint.Version,
		Root:        root,
		FS:          fsys,
		Runner:      &mdcheck.RealRunner{},
	}

	switch kind {
	case kindTOML:
		return []check.Checker{tomlCheck}
	case kindMarkdown:
		return []check.Checker{mdCheck}
	default:
		return []check.Checker{tomlCheck, mdCheck}
	}
}
