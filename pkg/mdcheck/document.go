package mdcheck

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"

	"github.com/vertti/repovalidate/pkg/check"
)

// requiredMeta are the frontmatter keys strict mode insists on.
var requiredMeta = []string{"description", "argument-hint"}

var markdown = goldmark.New()

// ValidateDocument checks that a prompt file opens with frontmatter carrying
// the required keys and has at least one Markdown block after it.
func ValidateDocument(path string, source []byte) error {
	var meta map[string]any
	body, err := frontmatter.MustParse(bytes.NewReader(source), &meta)
	if err != nil {
		if errors.Is(err, frontmatter.ErrNotFound) {
			return &check.SchemaError{Path: path, Reason: "missing frontmatter"}
		}
		return &check.SchemaError{Path: path, Reason: fmt.Sprintf("invalid frontmatter: %v", err)}
	}

	for _, key := range requiredMeta {
		value, ok := meta[key]
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

	doc := markdown.Parser().Parse(text.NewReader(body))
	if doc.ChildCount() == 0 {
		return &check.SchemaError{Path: path, Reason: "no content after frontmatter"}
	}
	return nil
}
