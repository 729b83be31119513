package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tessro/ringer/internal/launch"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		if !m.ready {
			m.ready = true
			if m.warning != nil {
				m.status.Error(m.warning)
			}
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, m.quit()

		case key.Matches(msg, m.keys.Start):
			cmds = append(cmds, m.start())

		case key.Matches(msg, m.keys.Next):
			cmds = append(cmds, m.setFocus((m.focus+1)%fieldCount))

		case key.Matches(msg, m.keys.Prev):
			cmds = append(cmds, m.setFocus((m.focus+fieldCount-1)%fieldCount))

		case key.Matches(msg, m.keys.Submit):
			if m.focus == FieldStart {
				cmds = append(cmds, m.start())
			} else {
				cmds = append(cmds, m.setFocus(m.focus+1))
			}

		default:
			cmds = append(cmds, m.updateFocused(msg))
		}

	case processStartedMsg:
		slog.Debug("tui: process started", "pid", msg.PID)
		cmds = append(cmds, waitForEventCmd(m.events))

	case processExitedMsg:
		if p := m.state.Active(); p != nil && p.Pid() == msg.PID {
			if msg.Err != nil {
				m.status.Error(fmt.Errorf("bot (pid %d) exited: %w", msg.PID, msg.Err))
			} else {
				cmds = append(cmds, m.status.Info(fmt.Sprintf("bot (pid %d) exited", msg.PID)))
			}
		}
		cmds = append(cmds, waitForEventCmd(m.events))

	case configReloadedMsg:
		cmds = append(cmds, m.status.Info("config reloaded, executable: "+msg.Executable))
		cmds = append(cmds, waitForEventCmd(m.events))

	case eventsClosedMsg:
		slog.Debug("tui: event channel closed")

	case clearStatusMsg:
		m.status.Clear(msg.seq)

	case tickMsg:
		cmds = append(cmds, tickCmd())

	default:
		cmds = append(cmds, m.updateFocused(msg))
	}

	m.syncForm()
	m.syncHeader()
	return m, tea.Batch(cmds...)
}

// updateFocused routes input to the focused component.
func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case FieldTower:
		m.tower, cmd = m.tower.Update(msg)
	case FieldMethod:
		m.method, cmd = m.method.Update(msg)
	case FieldStage:
		if km, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(km, m.keys.Increment):
				m.stage.Increment()
			case key.Matches(km, m.keys.Decrement):
				m.stage.Decrement()
			}
		}
	}
	return cmd
}

// start launches the bot with the current form, replacing any running one.
func (m *Model) start() tea.Cmd {
	m.syncForm()
	err := m.sup.Start(m.state)
	if launch.StartedWithWarning(err) {
		m.status.Warn(fmt.Sprintf("pid %d: %v", m.state.Active().Pid(), err))
		return nil
	}
	if err != nil {
		slog.Warn("start failed", "error", err)
		m.status.Error(err)
		return nil
	}
	p := m.state.Active()
	full, _ := m.state.FullMethodName()
	return m.status.Info(fmt.Sprintf("started %s (pid %d): tower %s, %s",
		m.sup.Executable(), p.Pid(), m.state.Identifier, full))
}

// quit terminates the bot before the program exits.
func (m *Model) quit() tea.Cmd {
	if err := m.sup.OnWindowClose(m.state); err != nil {
		slog.Error("terminate on quit failed", "error", err)
	}
	m.Close()
	return tea.Quit
}

// tickCmd returns a command that sends a tick message after a delay.
func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForEventCmd returns a command that waits for the next forwarded event.
func waitForEventCmd(events <-chan tea.Msg) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return msg
	}
}
