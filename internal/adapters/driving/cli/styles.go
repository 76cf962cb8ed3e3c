package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/custodia-labs/prepress/internal/core/domain"
)

// Status colours follow the usual traffic-light reading: green for
// passed, yellow for incomplete, red for failed.
var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	passedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
	incompleteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))
	failedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
)

// colourEnabled reports whether styled output should be produced.
// Colour requires a terminal on stdout and the colour setting on.
func colourEnabled() bool {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			return settings.Output.Colour
		}
	}
	return true
}

// renderTitle styles a section title when colour is enabled.
func renderTitle(s string) string {
	if !colourEnabled() {
		return s
	}
	return titleStyle.Render(s)
}

// renderStatus renders a chunk status padded to width runes. Padding
// happens before styling so ANSI codes do not break column alignment.
func renderStatus(status domain.ChunkStatus, width int) string {
	padded := fmt.Sprintf("%-*s", width, string(status))
	if !colourEnabled() {
		return padded
	}
	switch status {
	case domain.ChunkStatusPassed:
		return passedStyle.Render(padded)
	case domain.ChunkStatusIncomplete:
		return incompleteStyle.Render(padded)
	case domain.ChunkStatusFailed:
		return failedStyle.Render(padded)
	default:
		return padded
	}
}
