package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans user supplied text before it is stored. Both policies are
// safe for concurrent use once built.
type Sanitizer struct {
	rich   *bluemonday.Policy
	strict *bluemonday.Policy
}

func New() *Sanitizer {
	rich := bluemonday.UGCPolicy()
	rich.RequireNoFollowOnLinks(true)
	rich.AddTargetBlankToFullyQualifiedLinks(true)

	return &Sanitizer{
		rich:   rich,
		strict: bluemonday.StrictPolicy(),
	}
}

// HTML keeps the rich-text allowlist and drops scripts, event handlers and
// javascript: URLs.
func (s *Sanitizer) HTML(in string) string {
	return strings.TrimSpace(s.rich.Sanitize(in))
}

// Text strips every tag and keeps the text content.
func (s *Sanitizer) Text(in string) string {
	return strings.TrimSpace(s.strict.Sanitize(in))
}
