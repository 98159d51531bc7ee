package link

import (
	"net/url"
	"strings"
)

// hostRule maps a registered domain to a host tag.
type hostRule struct {
	domain string
	tag    HostTag
}

// knownHosts is checked in order; the first rule whose domain is the URL's
// host, or a parent of it, wins.
var knownHosts = []hostRule{
	{"megaup.net", Redirector},
	{"usersdrive.com", GenericHost},
}

// Classify returns the host tag for a URL, or Unknown when no rule matches.
func Classify(rawURL string) HostTag {
	host := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		host = u.Hostname()
	}
	host = strings.TrimSuffix(strings.ToLower(host), ".")

	for _, r := range knownHosts {
		if host == r.domain || strings.HasSuffix(host, "."+r.domain) {
			return r.tag
		}
	}
	return Unknown
}
