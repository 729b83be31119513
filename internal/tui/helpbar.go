package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// HelpBar displays context-sensitive keyboard shortcuts at the bottom of the TUI.
type HelpBar struct {
	width int
	keys  KeyBindings
	focus Field
}

// NewHelpBar creates a new help bar component.
func NewHelpBar() HelpBar {
	return HelpBar{
		keys: DefaultKeyBindings(),
	}
}

// SetWidth updates the help bar width.
func (h *HelpBar) SetWidth(width int) {
	h.width = width
}

// SetFocus updates which field the shortcuts are shown for.
func (h *HelpBar) SetFocus(focus Field) {
	h.focus = focus
}

// View renders the help bar.
func (h HelpBar) View() string {
	var bindings []key.Binding
	switch h.focus {
	case FieldStage:
		bindings = []key.Binding{h.keys.Decrement, h.keys.Increment, h.keys.Next, h.keys.Start, h.keys.Quit}
	case FieldStart:
		bindings = []key.Binding{h.keys.Submit, h.keys.Prev, h.keys.Quit}
	default:
		bindings = []key.Binding{h.keys.Next, h.keys.Prev, h.keys.Start, h.keys.Quit}
	}
	return statusStyle.Width(h.width).Render(formatHelp(bindings))
}

// formatHelp formats a list of key bindings as help text.
func formatHelp(bindings []key.Binding) string {
	var parts []string
	for _, b := range bindings {
		help := b.Help()
		parts = append(parts, help.Key+": "+help.Desc)
	}
	return strings.Join(parts, "  ")
}
