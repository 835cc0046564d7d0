// Package fileset discovers the files a check validates.
package fileset

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/vertti/repovalidate/pkg/check"
)

// Set is the result of a single discovery run.
type Set struct {
	Pattern string   // slash-separated, relative to the root, e.g. "commands/*.toml"
	Paths   []string // matched regular files, sorted, relative to the root
}

// Len returns the number of matched files.
func (s Set) Len() int {
	return len(s.Paths)
}

// Pattern joins a directory and a file glob into a root-relative pattern.
func Pattern(dir, glob string) string {
	return path.Join(filepath.ToSlash(dir), glob)
}

// Discover returns the regular files in fsys matching pattern.
// Hidden files and directories are skipped unless the pattern names them
// with a leading dot, the way a shell glob does.
// A pattern that matches nothing, including a missing directory,
// yields a *check.NoInputFilesError.
func Discover(fsys fs.FS, pattern string) (Set, error) {
	set := Set{Pattern: pattern}

	if !doublestar.ValidatePattern(pattern) {
		return set, fmt.Errorf("invalid pattern %q", pattern)
	}

	matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return set, fmt.Errorf("glob %s: %w", pattern, err)
	}

	visible := matches[:0]
	for _, m := range matches {
		if !hidden(pattern, m) {
			visible = append(visible, m)
		}
	}
	if len(visible) == 0 {
		return set, &check.NoInputFilesError{Pattern: pattern}
	}

	sort.Strings(visible)
	set.Paths = visible
	return set, nil
}

// hidden reports whether match has a dot-prefixed element that no
// dot-prefixed segment of pattern asks for.
func hidden(pattern, match string) bool {
	segments := strings.Split(pattern, "/")
	for _, elem := range strings.Split(match, "/") {
		if !strings.HasPrefix(elem, ".") {
			continue
		}
		if !explicitDot(segments, elem) {
			return true
		}
	}
	return false
}

func explicitDot(segments []string, elem string) bool {
	for _, seg := range segments {
		if !strings.HasPrefix(seg, ".") {
			continue
		}
		if ok, _ := doublestar.Match(seg, elem); ok {
			return true
		}
	}
	return false
}
