package tui

import "time"

// processStartedMsg reports a bot spawned by the supervisor.
type processStartedMsg struct {
	PID  int
	Args []string
}

// processExitedMsg reports a reaped bot process.
type processExitedMsg struct {
	PID int
	Err error
}

// configReloadedMsg reports a config file reload.
type configReloadedMsg struct {
	Path       string
	Executable string
}

// eventsClosedMsg is sent when the event channel has been closed.
type eventsClosedMsg struct{}

// clearStatusMsg clears the status line if nothing newer replaced it.
type clearStatusMsg struct {
	seq int
}

// tickMsg drives the periodic header refresh.
type tickMsg time.Time
