//go:build windows

package launch

import (
	"os"
	"os/exec"
)

// setProcessGroup is a no-op; Windows has no Unix process groups.
func setProcessGroup(_ *exec.Cmd) {}

// terminate kills the direct process.
func terminate(p *os.Process) error {
	return p.Kill()
}
