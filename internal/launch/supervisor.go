package launch

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/tessro/ringer/internal/event"
	"github.com/tessro/ringer/internal/logging"
	"github.com/tessro/ringer/internal/method"
)

// Errors returned by supervisor operations.
var (
	ErrNoExecutable = errors.New("no executable configured")
	ErrTerminate    = errors.New("terminate previous process")
	ErrSpawn        = errors.New("spawn process")
)

// Supervisor starts the bot from a State and makes sure at most one
// instance is running: a new start terminates the previous process
// first, and closing terminates the current one.
type Supervisor struct {
	mu sync.RWMutex
	// +checklocks:mu
	executable string

	spawner Spawner
	bus     *event.Bus
}

// NewSupervisor creates a supervisor for executable.
// A nil spawner uses an ExecSpawner with inherited stdio; a nil bus
// disables events.
func NewSupervisor(executable string, spawner Spawner, bus *event.Bus) *Supervisor {
	if spawner == nil {
		spawner = &ExecSpawner{}
	}
	return &Supervisor{
		executable: executable,
		spawner:    spawner,
		bus:        bus,
	}
}

// Executable returns the configured executable path.
func (s *Supervisor) Executable() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.executable
}

// SetExecutable changes the executable used by the next Start.
func (s *Supervisor) SetExecutable(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.executable = path
}

// Start launches the bot with the state's current form.
//
// A tracked process is terminated before the new one is spawned; if that
// termination fails the start is aborted and the old handle kept. On
// success the new handle replaces the old one.
//
// A stage with no name still launches, with the method argument
// "<method> ", and Start returns an error wrapping method.ErrUnknownStage
// alongside the running process. Use StartedWithWarning to tell it apart
// from a failed start.
func (s *Supervisor) Start(st *State) error {
	form := st.Visible()
	args, nameErr := BuildArgs(form)
	executable := s.Executable()
	if executable == "" {
		return ErrNoExecutable
	}

	log := slog.With("component", "supervisor")

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.active != nil {
		if err := s.terminate(st.active); err != nil {
			log.Error("terminate previous failed", "pid", st.active.Pid(), "error", err)
			return err
		}
		st.active = nil
		st.launched = nil
	}

	log.Debug("spawning", "executable", executable, "args", args)
	proc, err := s.spawner.Spawn(executable, args)
	if err != nil {
		log.Error("spawn failed", "executable", executable, "error", err)
		return fmt.Errorf("%w %s: %w", ErrSpawn, executable, err)
	}

	st.active = proc
	st.launched = &form
	log.Info("bot started", "pid", proc.Pid(), "executable", executable, "args", args)

	event.Publish(s.bus, event.ProcessStarted{PID: proc.Pid(), Executable: executable, Args: args})
	if s.bus != nil {
		go s.watchExit(proc)
	}

	if nameErr != nil {
		log.Warn("launched without a stage name", "pid", proc.Pid(), "stage", form.Stage, "method", args[2])
		return fmt.Errorf("started with method %q: %w", args[2], nameErr)
	}
	return nil
}

// StartedWithWarning reports whether err, returned by Start, means the bot
// was launched but its stage had no name.
func StartedWithWarning(err error) bool {
	return errors.Is(err, method.ErrUnknownStage)
}

// OnWindowClose terminates the tracked process, if any, and forgets it.
// It does not close anything itself.
func (s *Supervisor) OnWindowClose(st *State) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.active == nil {
		return nil
	}
	if err := s.terminate(st.active); err != nil {
		slog.Error("terminate on close failed", "component", "supervisor", "pid", st.active.Pid(), "error", err)
		return err
	}
	st.active = nil
	st.launched = nil
	return nil
}

// terminate sends one termination signal to p.
func (s *Supervisor) terminate(p Process) error {
	pid := p.Pid()
	if err := p.Terminate(); err != nil {
		return fmt.Errorf("%w (pid %d): %w", ErrTerminate, pid, err)
	}
	slog.Info("bot terminated", "component", "supervisor", "pid", pid)
	event.Publish(s.bus, event.ProcessTerminated{PID: pid})
	return nil
}

func (s *Supervisor) watchExit(p Process) {
	defer logging.LogPanic("exit-watcher", nil)
	<-p.Done()
	err := p.ExitErr()
	slog.Info("bot exited", "component", "supervisor", "pid", p.Pid(), "error", err)
	event.Publish(s.bus, event.ProcessExited{PID: p.Pid(), Err: err})
}
