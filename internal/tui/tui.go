// Package tui provides the Bubbletea-based launch form for ringer.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tessro/ringer/internal/event"
	"github.com/tessro/ringer/internal/launch"
	"github.com/tessro/ringer/internal/method"
)

// Field identifies a focusable row of the form.
type Field int

const (
	FieldTower Field = iota
	FieldStage
	FieldMethod
	FieldStart

	fieldCount
)

// refreshInterval is how often the header re-checks whether the bot exited.
const refreshInterval = time.Second

// Options configures the TUI.
type Options struct {
	// Supervisor launches and terminates the bot. Required.
	Supervisor *launch.Supervisor
	// State is the form state shared with the supervisor. Required.
	State *launch.State
	// Bus delivers process and config events. Optional.
	Bus *event.Bus
	// Warning is shown in the status line at startup, e.g. a bad executable.
	Warning error
}

// Model is the main Bubbletea model for the launch form.
type Model struct {
	// Window dimensions
	width  int
	height int
	ready  bool

	sup   *launch.Supervisor
	state *launch.State

	// Components
	header  Header
	tower   textinput.Model
	stage   Stepper
	method  textinput.Model
	status  StatusLine
	helpBar HelpBar

	focus Field
	keys  KeyBindings

	// Events forwarded from the bus
	events      <-chan tea.Msg
	unsubscribe func()

	warning error
}

// New creates a new TUI model.
func New(opts Options) Model {
	st := opts.State

	tower := textinput.New()
	tower.Placeholder = "tower ID"
	tower.Prompt = ""
	tower.CharLimit = 64
	tower.SetValue(st.Identifier)

	meth := textinput.New()
	meth.Placeholder = "method name"
	meth.Prompt = ""
	meth.CharLimit = 128
	meth.Width = 40
	meth.SetValue(st.Method)

	m := Model{
		sup:     opts.Supervisor,
		state:   st,
		header:  NewHeader(),
		tower:   tower,
		stage:   NewStepper(st.Stage, method.MinStage, method.MaxStage),
		method:  meth,
		helpBar: NewHelpBar(),
		keys:    DefaultKeyBindings(),
		warning: opts.Warning,
	}
	if opts.Bus != nil {
		m.events, m.unsubscribe = forwardEvents(opts.Bus)
	}
	m.setFocus(FieldTower)
	m.syncHeader()
	return m
}

// forwardEvents subscribes to the bus and funnels events into a channel
// the model reads one message at a time.
func forwardEvents(bus *event.Bus) (<-chan tea.Msg, func()) {
	ch := make(chan tea.Msg, 16)
	send := func(msg tea.Msg) {
		select {
		case ch <- msg:
		default:
			slog.Warn("tui event channel full, dropping event", "msg", fmt.Sprintf("%T", msg))
		}
	}
	unsubs := []func(){
		event.Subscribe(bus, func(ev event.ProcessStarted) {
			send(processStartedMsg{PID: ev.PID, Args: ev.Args})
		}),
		event.Subscribe(bus, func(ev event.ProcessExited) {
			send(processExitedMsg{PID: ev.PID, Err: ev.Err})
		}),
		event.Subscribe(bus, func(ev event.ConfigReloaded) {
			send(configReloadedMsg{Path: ev.Path, Executable: ev.Executable})
		}),
	}
	var once sync.Once
	return ch, func() {
		once.Do(func() {
			for _, u := range unsubs {
				u()
			}
		})
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textinput.Blink,
		tickCmd(),
		waitForEventCmd(m.events),
	}
	return tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	rows := []string{
		m.row(FieldTower, "Tower ID:", m.tower.View()),
		m.row(FieldStage, "Stage:", m.stage.View()),
		m.row(FieldMethod, "Method:", m.method.View()),
		"",
		m.button(),
	}
	form := formStyle.Render(strings.Join(rows, "\n"))

	// Fill the space between the form and the bottom bars.
	used := lipgloss.Height(form) + 3
	pad := ""
	if gap := m.height - used; gap > 0 {
		pad = strings.Repeat("\n", gap)
	}

	return fmt.Sprintf("%s\n%s%s\n%s\n%s", m.header.View(), form, pad, m.status.View(), m.helpBar.View())
}

func (m Model) row(field Field, label, content string) string {
	style := labelStyle
	if m.focus == field {
		style = labelFocusedStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, style.Render(label), " ", content)
}

func (m Model) button() string {
	style := buttonStyle
	if m.focus == FieldStart {
		style = buttonFocusedStyle
	}
	return strings.Repeat(" ", labelStyle.GetWidth()+1) + style.Render("Start")
}

// setFocus moves focus to field and updates the components.
func (m *Model) setFocus(field Field) tea.Cmd {
	m.focus = field
	m.stage.SetFocused(field == FieldStage)
	m.helpBar.SetFocus(field)

	var cmd tea.Cmd
	m.tower.Blur()
	m.method.Blur()
	switch field {
	case FieldTower:
		cmd = m.tower.Focus()
	case FieldMethod:
		cmd = m.method.Focus()
	}
	return cmd
}

// syncForm copies the component values into the shared state.
func (m *Model) syncForm() {
	m.state.Identifier = m.tower.Value()
	m.state.Stage = m.stage.Value()
	m.state.Method = m.method.Value()
}

// syncHeader refreshes the header from the tracked process.
func (m *Model) syncHeader() {
	p := m.state.Active()
	if p == nil {
		m.header.SetProcess(0, false, false)
		return
	}
	exited := false
	select {
	case <-p.Done():
		exited = true
	default:
	}
	m.header.SetProcess(p.Pid(), exited, m.state.Modified())
}

// updateLayout propagates the window width to the components.
func (m *Model) updateLayout() {
	m.header.SetWidth(m.width)
	m.status.SetWidth(m.width)
	m.helpBar.SetWidth(m.width)
	m.tower.Width = min(40, max(10, m.width-20))
	m.method.Width = min(60, max(10, m.width-20))
}

// Close releases event subscriptions.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Run starts the TUI and blocks until the user quits.
func Run(opts Options) error {
	model := New(opts)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	slog.Debug("tui.Run: running program")
	_, err := p.Run()
	slog.Debug("tui.Run: program exited", "error", err)
	return err
}
