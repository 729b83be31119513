package event

// Event type identifiers for the dispatcher.
const (
	TypeProcessStarted uint32 = iota + 1
	TypeProcessTerminated
	TypeProcessExited
	TypeConfigReloaded
)

// ProcessStarted is published after the bot process has been spawned.
type ProcessStarted struct {
	PID        int
	Executable string
	Args       []string
}

// Type returns the event type identifier for ProcessStarted.
func (ProcessStarted) Type() uint32 { return TypeProcessStarted }

// ProcessTerminated is published after a termination signal was delivered.
type ProcessTerminated struct {
	PID int
}

// Type returns the event type identifier for ProcessTerminated.
func (ProcessTerminated) Type() uint32 { return TypeProcessTerminated }

// ProcessExited is published when a spawned process has been reaped,
// whether it was terminated or exited on its own.
type ProcessExited struct {
	PID int
	Err error
}

// Type returns the event type identifier for ProcessExited.
func (ProcessExited) Type() uint32 { return TypeProcessExited }

// ConfigReloaded is published when the config file changed on disk and
// was loaded successfully.
type ConfigReloaded struct {
	Path       string
	Executable string
}

// Type returns the event type identifier for ConfigReloaded.
func (ConfigReloaded) Type() uint32 { return TypeConfigReloaded }
