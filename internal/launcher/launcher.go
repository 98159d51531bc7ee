// Package launcher opens resolved links in the user's browser.
// Commands are run with explicit argument slices, never through a shell.
package launcher

import (
	"os"
	"strings"
)

// Launcher is the interface for link openers.
type Launcher interface {
	// Open hands the URL to the browser or system handler.
	Open(url string) error

	// Name returns the launcher name.
	Name() string

	// Available reports whether the launcher can run on this system.
	Available() bool
}

// androidMarker is set in Termux and other Android shells.
const androidMarker = "ANDROID_ROOT"

// New creates a launcher by name. "auto" picks Termux on Android and the
// desktop handler everywhere else.
func New(name string) Launcher {
	switch strings.ToLower(name) {
	case "desktop":
		return &Desktop{}
	case "termux":
		return &Termux{}
	case "none":
		return &None{}
	default:
		if _, ok := os.LookupEnv(androidMarker); ok {
			return &Termux{}
		}
		return &Desktop{}
	}
}
