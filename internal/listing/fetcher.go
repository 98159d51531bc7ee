// Package listing fetches a movie's page from the listing site and extracts
// the candidate download links on it.
package listing

import (
	"context"
	"fmt"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/log"

	"reelfetch/internal/httputil"
	"reelfetch/internal/link"
)

// Fetcher retrieves movie pages from a single listing site.
type Fetcher struct {
	base   string // e.g., "https://channelmyanmar.to/"
	client *http.Client
	log    *log.Logger
}

// New creates a Fetcher for the given base URL.
func New(base string, client *http.Client, logger *log.Logger) *Fetcher {
	if client == nil {
		client = httputil.NewClient()
	}
	return &Fetcher{
		base:   base,
		client: client,
		log:    logger,
	}
}

// PageURL returns the movie page URL for a slug.
func (f *Fetcher) PageURL(slug string) string {
	return httputil.BuildURL(f.base, slug)
}

// Fetch returns the candidate links on the page for slug, in document order.
// A missing page or a network error yields no candidates and an error
// wrapping link.ErrNetwork; callers report it and carry on.
func (f *Fetcher) Fetch(ctx context.Context, slug string) ([]link.Candidate, error) {
	pageURL := f.PageURL(slug)
	f.log.Debug("fetching listing", "url", pageURL)

	doc, err := f.fetchDocument(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w: %v", pageURL, link.ErrNetwork, err)
	}

	candidates := parseCandidates(doc, pageURL)
	f.log.Debug("listing parsed", "url", pageURL, "candidates", len(candidates))
	return candidates, nil
}

// fetchDocument fetches a URL and parses it into a goquery Document.
func (f *Fetcher) fetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	resp, err := httputil.Get(ctx, f.client, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := httputil.CheckStatus(resp); err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	return doc, nil
}
