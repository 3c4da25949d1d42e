package daemon

import (
	"os"
	"syscall"
)

// ProcessLiveness reports whether a process with a given PID is running.
// The production implementation probes with signal 0; tests substitute a
// fake so no real processes are involved.
type ProcessLiveness interface {
	Alive(pid int) bool
}

// SignalLiveness probes liveness by sending the null signal.
type SignalLiveness struct{}

// Alive sends signal 0 to the process. This doesn't deliver a signal, it
// just checks existence and permissions.
func (SignalLiveness) Alive(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		// On Unix, FindProcess always succeeds
		return false
	}

	err = process.Signal(syscall.Signal(0))
	if err == nil {
		return true
	}

	if err == syscall.ESRCH {
		// No such process
		return false
	}

	if err == syscall.EPERM {
		// Process exists but we don't have permission to signal it
		return true
	}

	return false
}
