package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"reelfetch/internal/link"
)

var (
	hostStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA"))
	resolvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")).Bold(true)
	partialStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EAB308")).Bold(true)
	failedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Faint(true)
)

// FormatCandidate renders a candidate for a selection list.
// e.g., "[redirector] https://megaup.net/x"
func FormatCandidate(c link.Candidate) string {
	return fmt.Sprintf("%s %s", hostStyle.Render("["+c.Host.String()+"]"), c.URL)
}

// FormatResult renders a resolution outcome on one or two lines.
func FormatResult(r link.Result) string {
	var badge string
	switch r.Status {
	case link.Resolved:
		badge = resolvedStyle.Render("resolved")
	case link.PartiallyResolved:
		badge = partialStyle.Render("partial")
	default:
		badge = failedStyle.Render("failed")
	}

	out := fmt.Sprintf("%s %s", badge, r.URL)
	if r.Err != nil {
		out += "\n  " + dimStyle.Render(r.Err.Error())
	}
	return out
}
