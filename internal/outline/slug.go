package outline

import (
	"regexp"
	"strings"
)

var (
	nonSlugRuns    = regexp.MustCompile(`[^a-z0-9]+`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// Slugify derives the URL-safe anchor base from heading text. "?" and
// "!" get spelled out so question and exclamation headings keep
// distinct anchors; every other run of non-alphanumerics collapses to a
// single hyphen. Idempotent on slug-like input.
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = strings.ReplaceAll(s, "?", "-questionmark")
	s = strings.ReplaceAll(s, "!", "-bang")
	s = nonSlugRuns.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	return whitespaceRuns.ReplaceAllString(s, "-")
}
