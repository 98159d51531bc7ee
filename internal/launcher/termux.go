package launcher

import (
	"fmt"
	"os"
	"os/exec"
)

// Termux opens links through termux-open on Android.
type Termux struct{}

func (t *Termux) Name() string { return "termux" }

func (t *Termux) Available() bool {
	_, err := exec.LookPath("termux-open")
	return err == nil
}

func (t *Termux) Open(url string) error {
	cmd := exec.Command("termux-open", url)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running termux-open: %w", err)
	}
	return nil
}

// None never opens anything; the link is only printed.
type None struct{}

func (n *None) Name() string { return "none" }

func (n *None) Available() bool { return true }

func (n *None) Open(string) error { return nil }
