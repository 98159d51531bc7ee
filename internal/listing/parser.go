package listing

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"reelfetch/internal/httputil"
	"reelfetch/internal/link"
)

// linksContainer holds the download table on movie pages. When it is present
// every link inside it is a download link, whatever the host.
const linksContainer = "div.enlaces_box"

// parseCandidates extracts candidate links from a movie page.
// Inside the download container all links are kept; otherwise the whole page
// is scanned and only links to known hosts are kept, since the rest are
// navigation and ads.
func parseCandidates(doc *goquery.Document, pageURL string) []link.Candidate {
	var candidates []link.Candidate

	box := doc.Find(linksContainer)
	if box.Length() > 0 {
		box.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
			href := hrefOf(s, pageURL)
			if href == "" {
				return
			}
			candidates = append(candidates, link.NewCandidate(href))
		})
		return candidates
	}

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := hrefOf(s, pageURL)
		if href == "" {
			return
		}
		c := link.NewCandidate(href)
		if c.Host == link.Unknown {
			return
		}
		candidates = append(candidates, c)
	})

	return candidates
}

// hrefOf returns the absolute http(s) target of an anchor, or "" when the
// anchor has no usable target.
func hrefOf(s *goquery.Selection, pageURL string) string {
	raw := strings.TrimSpace(s.AttrOr("href", ""))
	if raw == "" || strings.HasPrefix(raw, "#") {
		return ""
	}

	abs := httputil.ResolveRef(pageURL, raw)
	u, err := url.Parse(abs)
	if err != nil {
		return ""
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return abs
	default:
		return ""
	}
}
