package launcher

import (
	"fmt"

	"github.com/pkg/browser"
)

// Desktop opens links with the platform's default handler
// (xdg-open, open, or rundll32).
type Desktop struct{}

func (d *Desktop) Name() string { return "desktop" }

func (d *Desktop) Available() bool { return true }

func (d *Desktop) Open(url string) error {
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("opening browser: %w", err)
	}
	return nil
}
