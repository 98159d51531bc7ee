package resolve

import "regexp"

// Default extraction patterns. Each captures the link in group 1.
var (
	// MegaUp serves a single-quoted link to its download subdomain.
	defaultIntermediatePattern = regexp.MustCompile(`href='(https://download\.megaup\.net[^']+)'`)
	// The solved download page links to the file mirror with double quotes.
	defaultFinalPattern = regexp.MustCompile(`href="(https://megadl\.boats/download/[^"]+)"`)
	// UsersDrive falls back to a site-relative /d/ path.
	defaultDirectPathPattern = regexp.MustCompile(`href\s*=\s*"(/d/[^"]+)"`)
)

// firstMatch returns capture group 1 of the first match of re in s.
func firstMatch(re *regexp.Regexp, s string) (string, bool) {
	m := re.FindStringSubmatch(s)
	if len(m) < 2 || m[1] == "" {
		return "", false
	}
	return m[1], true
}
