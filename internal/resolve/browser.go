package resolve

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"reelfetch/internal/browser"
	"reelfetch/internal/httputil"
	"reelfetch/internal/link"
)

// downloadButtonSelector is the button MegaUp reveals once its countdown and
// challenge have run in a real browser.
const downloadButtonSelector = "#btn-download"

// Browser resolves MegaUp links by letting a real browser run the page
// instead of going through the solver service.
type Browser struct {
	engine   browser.Engine
	log      *log.Logger
	Selector string
}

// NewBrowser creates a Browser resolver on top of engine.
func NewBrowser(engine browser.Engine, logger *log.Logger) *Browser {
	return &Browser{engine: engine, log: logger, Selector: downloadButtonSelector}
}

// Resolve opens a fresh browser session for this candidate only. The session
// is closed on every return path.
func (b *Browser) Resolve(ctx context.Context, c link.Candidate) link.Result {
	b.log.Debug("resolving with browser", "url", c.URL)

	session, err := b.engine.Open(ctx)
	if err != nil {
		b.log.Warn("could not start browser", "err", err)
		return link.Fail(c.URL, fmt.Errorf("%w: %w", link.ErrResource, err))
	}
	defer func() {
		if err := session.Close(); err != nil {
			b.log.Debug("closing browser", "err", err)
		}
	}()

	if err := session.Goto(ctx, c.URL); err != nil {
		b.log.Warn("page did not load", "url", c.URL, "err", err)
		return link.Fail(c.URL, fmt.Errorf("%w: %w", link.ErrResource, err))
	}

	if err := session.WaitVisible(ctx, b.Selector); err != nil {
		b.log.Warn("download button never appeared", "url", c.URL, "err", err)
		return link.Fail(c.URL, fmt.Errorf("%w: %w", link.ErrResource, err))
	}

	href, err := session.Attr(ctx, b.Selector, "href")
	if err != nil || strings.TrimSpace(href) == "" {
		b.log.Warn("download button has no link", "url", c.URL, "err", err)
		return link.Fail(c.URL, fmt.Errorf("%w: download button without href on %s", link.ErrExtraction, c.URL))
	}

	return link.Done(c.URL, httputil.ResolveRef(session.URL(), href))
}
