package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"
)

// statusTimeout is how long informational messages stay visible.
// Errors stay until replaced.
const statusTimeout = 5 * time.Second

// StatusLine shows the result of the last action.
type StatusLine struct {
	width  int
	text   string
	isErr  bool
	isWarn bool
	seq    int
}

// SetWidth updates the status line width.
func (s *StatusLine) SetWidth(width int) {
	s.width = width
}

// Info shows an informational message and returns a command that clears it.
func (s *StatusLine) Info(text string) tea.Cmd {
	s.text = text
	s.isErr = false
	s.isWarn = false
	s.seq++
	seq := s.seq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// Error shows an error message.
func (s *StatusLine) Error(err error) {
	s.text = err.Error()
	s.isErr = true
	s.isWarn = false
	s.seq++
}

// Warn shows a warning. Like errors, warnings stay until replaced.
func (s *StatusLine) Warn(text string) {
	s.text = text
	s.isErr = false
	s.isWarn = true
	s.seq++
}

// Clear removes the message if seq is still current.
func (s *StatusLine) Clear(seq int) {
	if seq == s.seq {
		s.text = ""
		s.isErr = false
		s.isWarn = false
	}
}

// Text returns the current message.
func (s StatusLine) Text() string {
	return s.text
}

// IsError reports whether the current message is an error.
func (s StatusLine) IsError() bool {
	return s.isErr
}

// IsWarning reports whether the current message is a warning.
func (s StatusLine) IsWarning() bool {
	return s.isWarn
}

// View renders the status line, truncated to fit on one row.
func (s StatusLine) View() string {
	text := s.text
	style := statusInfoStyle
	switch {
	case s.isErr:
		text = "Error: " + text
		style = errorBarStyle
	case s.isWarn:
		text = "Warning: " + text
		style = warningBarStyle
	}
	if s.width > 4 {
		// Two columns of padding.
		text = truncate.StringWithTail(text, uint(s.width-2), "…")
	}
	return style.Width(s.width).Render(text)
}
