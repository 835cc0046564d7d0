package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFindFile_ExplicitPath(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := writeConfig(t, tmpDir, "")

	found, err := FindFile(tmpDir, configPath)
	require.NoError(t, err)
	assert.Equal(t, configPath, found)

	_, err = FindFile(tmpDir, filepath.Join(tmpDir, "nonexistent.toml"))
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound), "explicit path errors should not look like a missing optional file")
}

func TestFindFile_TraverseUp(t *testing.T) {
	tmpDir := t.TempDir()
	subdir := filepath.Join(tmpDir, "prompts", "drafts")
	require.NoError(t, os.MkdirAll(subdir, 0o700))
	configPath := writeConfig(t, tmpDir, "")

	found, err := FindFile(subdir, "")
	require.NoError(t, err)
	assert.Equal(t, configPath, found)
}

func TestFindFile_StopAtGit(t *testing.T) {
	tmpDir := t.TempDir()
	projectDir := filepath.Join(tmpDir, "project")
	require.NoError(t, os.MkdirAll(filepath.Join(projectDir, ".git"), 0o700))
	writeConfig(t, tmpDir, "")

	_, err := FindFile(projectDir, "")
	assert.ErrorIs(t, err, ErrNotFound)

	projectConfig := writeConfig(t, projectDir, "")
	found, err := FindFile(projectDir, "")
	require.NoError(t, err)
	assert.Equal(t, projectConfig, found)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
strict = true

[prompts]
dir = "docs/prompts"

[lint]
command = "markdownlint"
args = ["--config", ".markdownlint.json"]
version = ">= 0.30"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Strict)
	assert.Equal(t, FileSet{Dir: "commands", Pattern: "*.toml"}, cfg.Commands, "unset tables keep defaults")
	assert.Equal(t, FileSet{Dir: "docs/prompts", Pattern: "*.md"}, cfg.Prompts, "unset keys keep defaults")
	assert.Equal(t, Lint{
		Command: "markdownlint",
		Args:    []string{"--config", ".markdownlint.json"},
		Version: ">= 0.30",
	}, cfg.Lint)
}

func TestLoad_Empty(t *testing.T) {
	cfg, err := Load(writeConfig(t, t.TempDir(), ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"malformed", "strict = ", "validate.toml"},
		{"unknown key", "[lint]\ncommnd = \"mdl\"\n", "unknown keys"},
		{"absolute dir", "[commands]\ndir = \"/etc\"\n", "commands.dir"},
		{"escaping dir", "[prompts]\ndir = \"../prompts\"\n", "prompts.dir"},
		{"bad pattern", "[prompts]\npattern = \"[.md\"\n", "prompts.pattern"},
		{"empty lint command", "[lint]\ncommand = \"\"\n", "lint.command"},
		{"bad lint version", "[lint]\nversion = \"not a constraint\"\n", "lint.version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, t.TempDir(), tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDefault_Validates(t *testing.T) {
	assert.NoError(t, Default().Validate())
}
