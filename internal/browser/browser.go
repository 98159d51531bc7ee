// Package browser drives a real browser engine for hosts whose anti-bot
// challenge can only be passed by executing the page.
package browser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Session is one exclusively owned browser page. Callers must Close it.
// Cancelling the context of a blocking call closes the page, which ends the
// call with the context's error.
type Session interface {
	// Goto navigates and waits until network activity settles.
	Goto(ctx context.Context, url string) error
	// WaitVisible blocks until an element matching selector is visible.
	WaitVisible(ctx context.Context, selector string) error
	// Attr reads an attribute from the first element matching selector.
	Attr(ctx context.Context, selector, name string) (string, error)
	// URL returns the page's current URL, after any redirects.
	URL() string
	// Close releases the page, the browser and the driver process.
	Close() error
}

// Engine opens new Sessions.
type Engine interface {
	Open(ctx context.Context) (Session, error)
}

// Playwright launches Chromium through playwright-go.
type Playwright struct {
	Headless bool
	Timeout  time.Duration // applied to navigation and element waits
}

// NewPlaywright creates a Playwright engine.
func NewPlaywright(headless bool, timeout time.Duration) *Playwright {
	return &Playwright{Headless: headless, Timeout: timeout}
}

// Install downloads the playwright driver and Chromium if missing.
func Install() error {
	return playwright.Install(&playwright.RunOptions{Browsers: []string{"chromium"}})
}

// Open starts the driver and a fresh browser. Partially started resources
// are released before an error is returned.
func (p *Playwright) Open(ctx context.Context) (Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("starting playwright: %w", err)
	}

	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(p.Headless),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("launching chromium: %w", err)
	}

	page, err := b.NewPage()
	if err != nil {
		b.Close()
		pw.Stop()
		return nil, fmt.Errorf("opening page: %w", err)
	}

	ms := float64(p.Timeout.Milliseconds())
	page.SetDefaultTimeout(ms)
	page.SetDefaultNavigationTimeout(ms)

	return &playwrightSession{pw: pw, browser: b, page: page, timeout: ms}, nil
}

type playwrightSession struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	page    playwright.Page
	timeout float64
}

// interruptible runs fn and calls abort if ctx ends first, since playwright
// calls only give up on their own timeout. Once ctx has ended its error wins
// over whatever fn returned.
func interruptible(ctx context.Context, abort func(), fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stop := context.AfterFunc(ctx, abort)
	defer stop()

	err := fn()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}

// abort closes the page, failing any call blocked on it.
func (s *playwrightSession) abort() {
	s.page.Close()
}

func (s *playwrightSession) Goto(ctx context.Context, url string) error {
	return interruptible(ctx, s.abort, func() error {
		_, err := s.page.Goto(url, playwright.PageGotoOptions{
			WaitUntil: playwright.WaitUntilStateNetworkidle,
			Timeout:   playwright.Float(s.timeout),
		})
		return err
	})
}

func (s *playwrightSession) WaitVisible(ctx context.Context, selector string) error {
	return interruptible(ctx, s.abort, func() error {
		return s.page.Locator(selector).WaitFor(playwright.LocatorWaitForOptions{
			State:   playwright.WaitForSelectorStateVisible,
			Timeout: playwright.Float(s.timeout),
		})
	})
}

func (s *playwrightSession) Attr(ctx context.Context, selector, name string) (string, error) {
	var value string
	err := interruptible(ctx, s.abort, func() error {
		var err error
		value, err = s.page.Locator(selector).First().GetAttribute(name)
		return err
	})
	return value, err
}

func (s *playwrightSession) URL() string {
	return s.page.URL()
}

func (s *playwrightSession) Close() error {
	return errors.Join(s.browser.Close(), s.pw.Stop())
}
