package launch

import (
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/tessro/ringer/internal/logging"
)

// Process is a handle to a spawned bot.
type Process interface {
	// Pid returns the OS process ID.
	Pid() int
	// Terminate sends the termination signal. A process that has already
	// exited is not an error.
	Terminate() error
	// Done is closed once the process has exited and been reaped.
	Done() <-chan struct{}
	// ExitErr returns the wait result. Only meaningful after Done is closed.
	ExitErr() error
}

// Spawner starts processes. It exists so the supervisor can be driven
// with fakes in tests.
type Spawner interface {
	Spawn(executable string, args []string) (Process, error)
}

// ExecSpawner spawns real OS processes in their own process group.
// Nil streams are inherited from ringer itself.
type ExecSpawner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Dir    string
}

// Spawn starts executable with args and returns without waiting for it.
func (e *ExecSpawner) Spawn(executable string, args []string) (Process, error) {
	cmd := exec.Command(executable, args...)
	cmd.Dir = e.Dir
	cmd.Stdin = orReader(e.Stdin, os.Stdin)
	cmd.Stdout = orWriter(e.Stdout, os.Stdout)
	cmd.Stderr = orWriter(e.Stderr, os.Stderr)
	setProcessGroup(cmd)

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	p := &execProcess{
		cmd:  cmd,
		done: make(chan struct{}),
	}
	go p.reap()
	return p, nil
}

func orReader(r, fallback io.Reader) io.Reader {
	if r != nil {
		return r
	}
	return fallback
}

func orWriter(w, fallback io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return fallback
}

// execProcess is the Process for a started exec.Cmd.
type execProcess struct {
	cmd  *exec.Cmd
	done chan struct{}
	err  error
}

func (p *execProcess) Pid() int {
	return p.cmd.Process.Pid
}

func (p *execProcess) Done() <-chan struct{} {
	return p.done
}

func (p *execProcess) ExitErr() error {
	select {
	case <-p.done:
		return p.err
	default:
		return nil
	}
}

func (p *execProcess) Terminate() error {
	select {
	case <-p.done:
		return nil
	default:
	}
	err := terminate(p.cmd.Process)
	if errors.Is(err, os.ErrProcessDone) {
		return nil
	}
	return err
}

// reap waits for the process so it does not linger as a zombie.
func (p *execProcess) reap() {
	defer logging.LogPanic("reaper", nil)
	p.err = p.cmd.Wait()
	close(p.done)
}
