package httputil

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateURL checks that a URL is well-formed and uses HTTPS.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("malformed URL: %w", err)
	}
	if u.Scheme != "https" {
		return fmt.Errorf("only HTTPS URLs are allowed, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("URL has no host")
	}
	return nil
}

// ValidateEndpoint checks a URL that may be plain HTTP: the solver endpoint,
// which usually runs on localhost, and host pages linked from the listing.
func ValidateEndpoint(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("malformed URL: %w", err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("only HTTP(S) endpoints are allowed, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("URL has no host")
	}
	return nil
}

// BuildURL appends a single escaped path segment to base.
// e.g., ("https://channelmyanmar.to/", "the-matrix") -> "https://channelmyanmar.to/the-matrix"
func BuildURL(base, segment string) string {
	return strings.TrimRight(base, "/") + "/" + url.PathEscape(segment)
}

// ResolveRef resolves a possibly relative href against the page it was found on.
// Hrefs that cannot be parsed are returned unchanged.
func ResolveRef(pageURL, href string) string {
	href = strings.TrimSpace(href)
	base, err := url.Parse(pageURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
