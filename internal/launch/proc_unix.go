//go:build !windows

package launch

import (
	"errors"
	"os"
	"os/exec"
	"syscall"
)

// setProcessGroup puts the bot in its own process group so that anything
// it spawns is terminated along with it. The group is a background group
// on a controlling terminal: a bot reading from the terminal is stopped
// with SIGTTIN, so callers give it a stdin other than the terminal.
func setProcessGroup(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Setpgid = true
}

// terminate sends SIGTERM to the process group, falling back to the
// process itself if the group is gone.
func terminate(p *os.Process) error {
	err := syscall.Kill(-p.Pid, syscall.SIGTERM)
	if err == nil {
		return nil
	}
	if errors.Is(err, syscall.ESRCH) {
		err = p.Signal(syscall.SIGTERM)
		if errors.Is(err, syscall.ESRCH) {
			return os.ErrProcessDone
		}
	}
	return err
}
