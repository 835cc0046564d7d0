// Package version reads a tool's version from its --version output
// and matches it against a semver constraint.
package version

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// versionRegex matches version patterns like 1.2.3, v1.2, 18, etc.
var versionRegex = regexp.MustCompile(`\bv?\d+(?:\.\d+){0,2}\b`)

// Extract finds and parses the first version number in a string.
func Extract(s string) (*semver.Version, error) {
	match := versionRegex.FindString(s)
	if match == "" {
		return nil, fmt.Errorf("no version found in: %q", strings.TrimSpace(s))
	}
	return semver.NewVersion(match)
}

// ParseConstraint parses a constraint such as ">= 0.12, < 1".
// An empty string yields nil, meaning any version is accepted.
func ParseConstraint(s string) (*semver.Constraints, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	c, err := semver.NewConstraint(s)
	if err != nil {
		return nil, fmt.Errorf("invalid version constraint %q: %w", s, err)
	}
	return c, nil
}

// Satisfies extracts the version from output and checks it against c.
// The parsed version is returned even when the constraint is not met.
func Satisfies(output string, c *semver.Constraints) (*semver.Version, error) {
	v, err := Extract(output)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return v, nil
	}
	if ok, errs := c.Validate(v); !ok {
		if len(errs) > 0 {
			return v, errs[0]
		}
		return v, fmt.Errorf("version %s does not satisfy %s", v, c)
	}
	return v, nil
}
