// Package slug turns free-text movie titles into the path segment used by
// the listing site.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	disallowedPattern = regexp.MustCompile(`[^a-z0-9\s_-]`)
	separatorPattern  = regexp.MustCompile(`[\s_]+`)
	hyphenRunPattern  = regexp.MustCompile(`-+`)
)

// asciiFold decomposes accented characters and drops everything outside ASCII,
// so "Amélie" becomes "Amelie".
func asciiFold(s string) string {
	t := transform.Chain(
		norm.NFKD,
		runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		return ""
	}
	return out
}

// Normalize converts a title into a lowercase, hyphen-separated ASCII slug.
// e.g., "The Matrix 1999!" -> "the-matrix-1999"
//
// Empty or whitespace-only input yields "", which callers treat as invalid.
func Normalize(title string) string {
	s := strings.ToLower(asciiFold(title))
	s = disallowedPattern.ReplaceAllString(s, "")
	s = separatorPattern.ReplaceAllString(s, "-")
	s = hyphenRunPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
