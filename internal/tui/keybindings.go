package tui

import "github.com/charmbracelet/bubbles/key"

// KeyBindings defines all keyboard shortcuts for the TUI.
type KeyBindings struct {
	// Global keys
	Quit  key.Binding
	Start key.Binding

	// Focus keys
	Next key.Binding
	Prev key.Binding

	// Stage stepper keys
	Increment key.Binding
	Decrement key.Binding

	// Submit moves to the next field, or starts when the button is focused.
	Submit key.Binding
}

// DefaultKeyBindings returns the default key bindings.
// Letter keys are avoided because the text fields need them.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Start: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "start"),
		),

		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev"),
		),

		Increment: key.NewBinding(
			key.WithKeys("right", "+", "="),
			key.WithHelp("→/+", "more bells"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("left", "-"),
			key.WithHelp("←/-", "fewer bells"),
		),

		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
	}
}
