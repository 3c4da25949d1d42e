// Package daemon supervises the browser daemon process for a session: it
// detects a live daemon, locates the daemon artifact, spawns it detached,
// and polls for the socket to appear.
package daemon

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"time"

	"github.com/leonletto/agent-browser/internal/session"
)

// ErrNotFound is returned when no daemon artifact exists at any candidate
// location.
var ErrNotFound = errors.New("daemon not found. Run from project directory or ensure daemon.js is alongside binary")

// ErrStartTimeout is returned when the spawned daemon's socket does not
// appear within the poll budget.
var ErrStartTimeout = errors.New("daemon failed to start")

// PollPolicy bounds the readiness wait after spawning the daemon.
type PollPolicy struct {
	Interval time.Duration
	Budget   time.Duration
}

// DefaultPollPolicy matches the daemon's observed startup time: a browser
// context usually binds its socket well under a second.
var DefaultPollPolicy = PollPolicy{
	Interval: 100 * time.Millisecond,
	Budget:   5 * time.Second,
}

// Supervisor ensures exactly one daemon is running and reachable for a
// session before any request is sent. It is best-effort: concurrent CLI
// invocations may race to spawn, and the daemon is expected to
// self-deduplicate via its exclusive socket bind.
type Supervisor struct {
	Session  session.Config
	Liveness ProcessLiveness
	Poll     PollPolicy

	// Locate returns candidate daemon artifact paths in priority order.
	// Overridable in tests; defaults to locations relative to the CLI
	// binary and the working directory.
	Locate func() ([]string, error)

	// Spawn starts the daemon at the given path as a detached background
	// process. Overridable in tests.
	Spawn func(daemonPath string) error
}

// NewSupervisor returns a Supervisor with production defaults.
func NewSupervisor(sess session.Config) *Supervisor {
	s := &Supervisor{
		Session:  sess,
		Liveness: SignalLiveness{},
		Poll:     DefaultPollPolicy,
		Locate:   locateDaemon,
	}
	s.Spawn = s.spawnDetached
	return s
}

// Ensure returns once a daemon for the session is ready: a live PID and an
// existing socket. Otherwise it spawns the daemon and waits for the socket,
// fire-and-forget beyond the readiness poll. Failures are terminal for the
// invocation; nothing is retried.
func (s *Supervisor) Ensure() error {
	socketPath := s.Session.SocketPath()

	if s.running() && pathExists(socketPath) {
		return nil
	}

	candidates, err := s.Locate()
	if err != nil {
		return err
	}

	daemonPath := ""
	for _, candidate := range candidates {
		if pathExists(candidate) {
			daemonPath = candidate
			break
		}
	}
	if daemonPath == "" {
		return ErrNotFound
	}

	if err := s.Spawn(daemonPath); err != nil {
		return fmt.Errorf("failed to start daemon: %w", err)
	}

	return s.waitForSocket(socketPath)
}

// running reports whether the PID file names a live process. A missing or
// unparsable PID file means the daemon is not running.
func (s *Supervisor) running() bool {
	pid, err := ReadPIDFile(s.Session.PIDPath())
	if err != nil {
		return false
	}
	return s.Liveness.Alive(pid)
}

// waitForSocket polls for the socket path until it appears or the budget is
// exhausted.
func (s *Supervisor) waitForSocket(socketPath string) error {
	deadline := time.After(s.Poll.Budget)
	ticker := time.NewTicker(s.Poll.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			return ErrStartTimeout
		case <-ticker.C:
			if pathExists(socketPath) {
				return nil
			}
		}
	}
}

// locateDaemon returns the candidate daemon.js locations: alongside the CLI
// binary, one directory up under dist/, and dist/ in the working directory.
// First existing wins.
func locateDaemon() ([]string, error) {
	executable, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}
	exeDir := filepath.Dir(executable)

	return []string{
		filepath.Join(exeDir, "daemon.js"),
		filepath.Join(exeDir, "..", "dist", "daemon.js"),
		filepath.Join("dist", "daemon.js"),
	}, nil
}

// spawnDetached starts `node daemon.js` with no inherited std streams in a
// new session, then releases the child so it is adopted by init.
func (s *Supervisor) spawnDetached(daemonPath string) error {
	cmd := exec.Command("node", daemonPath) //nolint:gosec // daemonPath from locateDaemon candidates
	cmd.Env = append(os.Environ(),
		session.EnvDaemonMarker+"=1",
		session.EnvSession+"="+s.Session.Name,
	)

	// Detach from current process - daemon runs independently
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true, // Create new session (detach from terminal)
	}

	if err := cmd.Start(); err != nil {
		return err
	}

	// Release the child process so it gets adopted by init/launchd.
	// Do NOT call cmd.Wait() — the parent is about to exit and a goroutine
	// calling Wait() would be killed mid-syscall.
	return cmd.Process.Release()
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
