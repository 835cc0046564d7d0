// Package config locates and loads the optional .validate.toml file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pelletier/go-toml/v2"

	"github.com/vertti/repovalidate/pkg/version"
)

// FileName is the config file searched for when --config is not given.
const FileName = ".validate.toml"

// ErrNotFound is returned by FindFile when no config file exists on the search path.
var ErrNotFound = errors.New(FileName + " file not found")

// Config holds per-repository settings. Zero values are never used directly;
// Load and Default start from the built-in defaults.
type Config struct {
	Strict   bool    `toml:"strict"`
	Commands FileSet `toml:"commands"`
	Prompts  FileSet `toml:"prompts"`
	Lint     Lint    `toml:"lint"`
}

// FileSet names a directory relative to the repository root and a glob inside it.
type FileSet struct {
	Dir     string `toml:"dir"`
	Pattern string `toml:"pattern"`
}

// Lint configures the external Markdown linter.
type Lint struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
	Version string   `toml:"version"` // semver constraint, empty = any
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Commands: FileSet{Dir: "commands", Pattern: "*.toml"},
		Prompts:  FileSet{Dir: "prompts", Pattern: "*.md"},
		Lint:     Lint{Command: "mdl"},
	}
}

// FindFile returns explicitPath if set, otherwise searches for FileName from
// startDir upward, stopping at the home directory, a .git directory or the
// filesystem root.
func FindFile(startDir, explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %w", err)
		}
		return explicitPath, nil
	}

	homeDir, _ := os.UserHomeDir()

	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		configPath := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		if currentDir == homeDir {
			break
		}

		if _, err := os.Stat(filepath.Join(currentDir, ".git")); err == nil {
			break
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", ErrNotFound
}

// Load reads a config file over the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // intentional: reading the repository's config file
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) {
			return Config{}, fmt.Errorf("%s: unknown keys:\n%s", path, strictErr.String())
		}
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	for _, entry := range []struct {
		name string
		set  FileSet
	}{{"commands", c.Commands}, {"prompts", c.Prompts}} {
		if !filepath.IsLocal(entry.set.Dir) {
			return fmt.Errorf("%s.dir %q must be a relative path inside the repository", entry.name, entry.set.Dir)
		}
		if entry.set.Pattern == "" || !doublestar.ValidatePattern(entry.set.Pattern) {
			return fmt.Errorf("%s.pattern %q is not a valid glob", entry.name, entry.set.Pattern)
		}
	}
	if strings.TrimSpace(c.Lint.Command) == "" {
		return errors.New("lint.command must not be empty")
	}
	if _, err := version.ParseConstraint(c.Lint.Version); err != nil {
		return fmt.Errorf("lint.version: %w", err)
	}
	return nil
}
