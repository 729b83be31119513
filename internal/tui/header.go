package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Header displays the ringer branding and the bot's process status.
type Header struct {
	width int

	pid      int
	exited   bool
	modified bool
}

// NewHeader creates a new header component.
func NewHeader() Header {
	return Header{}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetProcess updates the process display. A zero pid means idle.
func (h *Header) SetProcess(pid int, exited, modified bool) {
	h.pid = pid
	h.exited = exited
	h.modified = modified
}

// View renders the header.
func (h Header) View() string {
	brand := headerBrandStyle.Render("🔔 ringer")

	var status string
	switch {
	case h.pid == 0:
		status = "idle"
	case h.exited:
		status = fmt.Sprintf("pid %d exited", h.pid)
	default:
		status = fmt.Sprintf("pid %d running", h.pid)
	}
	stats := headerStatsStyle.Render(status)

	var modified string
	if h.modified && h.pid != 0 && !h.exited {
		modified = headerModifiedStyle.Render("● modified ")
	}

	spacerWidth := h.width - lipgloss.Width(brand) - lipgloss.Width(modified) - lipgloss.Width(stats)
	if spacerWidth < 0 {
		spacerWidth = 0
	}
	spacer := lipgloss.NewStyle().Width(spacerWidth).Render("")

	content := lipgloss.JoinHorizontal(lipgloss.Top, brand, spacer, modified, stats)
	return headerContainerStyle.Width(h.width).Render(content)
}
