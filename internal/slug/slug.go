// Package slug derives URL slugs from blog titles.
package slug

import (
	"regexp"
	"strings"
)

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9\s-]`)
	spaces    = regexp.MustCompile(`\s+`)
	hyphenRun = regexp.MustCompile(`-+`)
)

// Make lowercases and trims the title, strips everything outside
// [a-z0-9 -], turns whitespace runs into hyphens and collapses hyphen
// runs. Two titles that normalize to the same slug collide.
func Make(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = nonSlug.ReplaceAllString(s, "")
	s = spaces.ReplaceAllString(s, "-")
	s = hyphenRun.ReplaceAllString(s, "-")
	return s
}
