package tomlcheck

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/vertti/repovalidate/pkg/check"
	"github.com/vertti/repovalidate/pkg/fileset"
)

const (
	DefaultDir  = "commands"
	DefaultGlob = "*.toml"
)

// requiredKeys are the command fields strict mode insists on.
var requiredKeys = []string{"description", "prompt"}

// Check verifies that every TOML file in a directory parses.
type Check struct {
	Dir    string // directory relative to FS root (default: commands)
	Glob   string // file pattern inside Dir (default: *.toml)
	Strict bool   // --strict: require description and prompt keys
	FS     fs.FS  // repository root
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

// Run executes the TOML check. It stops at the first file that fails.
func (c *Check) Run(_ context.Context) check.Result {
	pattern := c.Pattern()
	result := check.Result{
		Name: fmt.Sprintf("toml: %s", pattern),
	}

	set, err := fileset.Discover(c.FS, pattern)
	if err != nil {
		return result.FailErr(err)
	}

	for _, path := range set.Paths {
		data, err := fs.ReadFile(c.FS, path)
		if err != nil {
			return result.Failf("failed to read %s: %v", path, err)
		}

		doc, err := Parse(path, data)
		if err != nil {
			result.FailErr(err)
			addParserContext(&result, err)
			return result
		}

		if c.Strict {
			if err := requireStrings(path, doc, requiredKeys...); err != nil {
				return result.FailErr(err)
			}
		}
	}

	return result.Pass(set.Len())
}

// Parse decodes a TOML document. Syntax errors come back as
// *check.MalformedTomlError carrying the parser's position.
func Parse(path string, data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		malformed := &check.MalformedTomlError{Path: path, Err: err}
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			malformed.Line, malformed.Column = decodeErr.Position()
		}
		return nil, malformed
	}
	return doc, nil
}

// addParserContext appends the parser's annotated source excerpt, if any.
func addParserContext(result *check.Result, err error) {
	var decodeErr *toml.DecodeError
	if !errors.As(err, &decodeErr) {
		return
	}
	for _, line := range strings.Split(strings.TrimRight(decodeErr.String(), "\n"), "\n") {
		if strings.TrimSpace(line) != "" {
			result.AddDetail(line)
		}
	}
}

func requireStrings(path string, doc map[string]any, keys ...string) error {
	for _, key := range keys {
		value, ok := doc[key]
		if !ok {
			return &check.SchemaError{Path: path, Field: key, Reason: "is required"}
		}
		s, ok := value.(string)
		if !ok {
			return &check.SchemaError{Path: path, Field: key, Reason: fmt.Sprintf("must be a string, got %T", value)}
		}
		if strings.TrimSpace(s) == "" {
			return &check.SchemaError{Path: path, Field: key, Reason: "must not be empty"}
		}
	}
	return nil
}
