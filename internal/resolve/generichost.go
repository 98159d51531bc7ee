package resolve

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/log"

	"reelfetch/internal/httputil"
	"reelfetch/internal/link"
)

// downloadButton is the element UsersDrive uses for its direct link.
const downloadButton = "a#downloadbtn"

// GenericHost resolves UsersDrive-style pages that expose the file behind a
// download button, or at least a /d/ path on a static content origin.
type GenericHost struct {
	client *http.Client
	origin string // e.g., "https://dns700.userdrive.org"
	log    *log.Logger

	DirectPath *regexp.Regexp // group 1 is a path on origin
}

// NewGenericHost creates a GenericHost resolver for the given content origin.
func NewGenericHost(client *http.Client, origin string, logger *log.Logger) *GenericHost {
	if client == nil {
		client = httputil.NewClient()
	}
	return &GenericHost{
		client:     client,
		origin:     strings.TrimRight(origin, "/"),
		log:        logger,
		DirectPath: defaultDirectPathPattern,
	}
}

// Resolve prefers the download button, then a /d/ path, then gives up and
// returns the candidate URL.
func (g *GenericHost) Resolve(ctx context.Context, c link.Candidate) link.Result {
	g.log.Debug("resolving generic host link", "url", c.URL)

	page, err := httputil.GetPage(ctx, g.client, c.URL)
	if err != nil {
		g.log.Warn("could not fetch host page", "url", c.URL, "err", err)
		return link.Fail(c.URL, fmt.Errorf("%w: %v", link.ErrNetwork, err))
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err == nil {
		if href, ok := doc.Find(downloadButton).First().Attr("href"); ok && strings.TrimSpace(href) != "" {
			return link.Done(c.URL, httputil.ResolveRef(c.URL, href))
		}
	}

	if path, ok := firstMatch(g.DirectPath, page); ok {
		return link.Done(c.URL, g.origin+path)
	}

	g.log.Warn("no direct link on host page", "url", c.URL)
	return link.Fail(c.URL, fmt.Errorf("%w: no download link on %s", link.ErrExtraction, c.URL))
}
